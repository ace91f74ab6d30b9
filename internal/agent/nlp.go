package agent

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const (
	DefaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"
	groqModel      = "llama3-8b-8192"
)

// NLPAgent forwards the user's question to a Groq chat-completions
// endpoint. Every failure mode (missing key, network error, upstream
// error status) degrades to a human-readable string in the response
// field; dispatch itself never fails.
type NLPAgent struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewNLPAgent(apiKey, apiURL string) *NLPAgent {
	if apiURL == "" {
		apiURL = DefaultGroqURL
	}
	return &NLPAgent{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (a *NLPAgent) Handle(payload Payload) (Result, error) {
	query, _ := stringField(payload, "query")
	return Result{"response": a.queryGroq(query)}, nil
}

func (a *NLPAgent) queryGroq(text string) string {
	if a.apiKey == "" {
		return "Groq API Key is missing!"
	}

	body, err := json.Marshal(groqRequest{
		Model:       groqModel,
		Messages:    []groqMessage{{Role: "user", Content: text}},
		Temperature: 0.7,
	})
	if err != nil {
		return "Network Error: " + err.Error()
	}

	req, err := http.NewRequest("POST", a.apiURL, bytes.NewReader(body))
	if err != nil {
		return "Network Error: " + err.Error()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "Network Error: " + err.Error()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "Network Error: " + err.Error()
	}
	if resp.StatusCode != http.StatusOK {
		return "Groq API Error: " + string(raw)
	}

	var out groqResponse
	if err := json.Unmarshal(raw, &out); err != nil || len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "Error processing request."
	}
	return out.Choices[0].Message.Content
}
