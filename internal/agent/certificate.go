package agent

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// CertificateAgent writes a one-page PDF per request. The path is
// derived from student id and certificate type, so repeating a request
// overwrites the previous file instead of versioning it.
type CertificateAgent struct {
	dir string
}

func NewCertificateAgent(dir string) *CertificateAgent {
	return &CertificateAgent{dir: dir}
}

func (a *CertificateAgent) Handle(payload Payload) (Result, error) {
	studentID, ok := stringField(payload, "student_id")
	if !ok {
		// The gateway sends form strings, but accept a bare number too.
		if n, numOk := uintField(payload, "student_id"); numOk {
			studentID, ok = fmt.Sprintf("%d", n), true
		}
	}
	if !ok {
		return nil, &ValidationError{Field: "student_id"}
	}

	certType, ok := stringField(payload, "type")
	if !ok || certType == "" {
		certType = "Bonafide"
	}

	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return nil, fmt.Errorf("create certificate dir: %w", err)
	}
	path := filepath.Join(a.dir, fmt.Sprintf("%s_%s.pdf", studentID, certType))

	pdf := fpdf.New("P", "pt", "A4", "")
	// Uncompressed so the two lines stay inspectable as plain text.
	pdf.SetCompression(false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(100, 92, certType+" Certificate")
	pdf.Text(100, 112, "Student ID: "+studentID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return nil, fmt.Errorf("write certificate: %w", err)
	}

	return Result{"status": "Certificate generated", "path": path}, nil
}
