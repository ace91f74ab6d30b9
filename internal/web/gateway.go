package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Gateway is the browser-facing half of the system. It keeps one value
// per session (the API bearer token), renders the forms, and proxies
// every submission to the backend's generic /request endpoint.
type Gateway struct {
	apiURL string
	store  *session.Store
	client *http.Client
}

func New(apiURL string) *Gateway {
	return &Gateway{
		apiURL: apiURL,
		store:  session.New(),
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *Gateway) Register(app *fiber.App) {
	app.Get("/", g.Index)
	app.Get("/login", g.LoginForm)
	app.Post("/login", g.Login)
	app.Get("/dashboard", g.Dashboard)
	app.Post("/leave", g.SubmitLeave)
	app.Post("/certificate", g.RequestCertificate)
	app.Post("/query", g.AskQuery)
	app.Post("/chat", g.Chat)
	app.Get("/logout", g.Logout)
}

func (g *Gateway) Index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

func (g *Gateway) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

func (g *Gateway) Login(c *fiber.Ctx) error {
	body, _ := json.Marshal(fiber.Map{
		"email":    c.FormValue("email"),
		"password": c.FormValue("password"),
	})

	resp, err := g.client.Post(g.apiURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return c.Render("login", fiber.Map{"Error": "Backend unavailable"})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.Render("login", fiber.Map{"Error": "Invalid credentials"})
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Token == "" {
		return c.Render("login", fiber.Map{"Error": "Invalid credentials"})
	}

	sess, err := g.store.Get(c)
	if err != nil {
		return c.Render("login", fiber.Map{"Error": "Session unavailable"})
	}
	sess.Set("token", out.Token)
	if err := sess.Save(); err != nil {
		return c.Render("login", fiber.Map{"Error": "Session unavailable"})
	}

	return c.Redirect("/dashboard")
}

func (g *Gateway) Dashboard(c *fiber.Ctx) error {
	token, ok := g.token(c)
	if !ok {
		return c.Redirect("/login")
	}

	return c.Render("dashboard", fiber.Map{
		"Flash":  g.popFlash(c),
		"Leaves": g.fetchLeaves(token),
	})
}

func (g *Gateway) SubmitLeave(c *fiber.Ctx) error {
	return g.proxyAction(c, fiber.Map{
		"agent_type": "leave",
		"user_id":    c.FormValue("user_id"),
		"leave_type": c.FormValue("leave_type"),
		"start_date": c.FormValue("start_date"),
		"end_date":   c.FormValue("end_date"),
	}, "status", "Failed to process leave request")
}

func (g *Gateway) RequestCertificate(c *fiber.Ctx) error {
	return g.proxyAction(c, fiber.Map{
		"agent_type": "certificate",
		"student_id": c.FormValue("student_id"),
		"type":       c.FormValue("type"),
	}, "status", "Failed to generate certificate")
}

func (g *Gateway) AskQuery(c *fiber.Ctx) error {
	return g.proxyAction(c, fiber.Map{
		"agent_type": "query",
		"query":      c.FormValue("query"),
	}, "response", "Failed to fetch query response")
}

func (g *Gateway) Chat(c *fiber.Ctx) error {
	return g.proxyAction(c, fiber.Map{
		"agent_type": "nlp",
		"query":      c.FormValue("message"),
	}, "response", "Failed to process your message")
}

func (g *Gateway) Logout(c *fiber.Ctx) error {
	if sess, err := g.store.Get(c); err == nil {
		sess.Delete("token")
		sess.Save()
	}
	return c.Redirect("/")
}

// proxyAction posts a tagged payload to the backend, flashes the
// textual outcome and bounces back to the dashboard. HTTP-level detail
// never reaches the user; they only see the fallback message.
func (g *Gateway) proxyAction(c *fiber.Ctx, payload fiber.Map, field, fallback string) error {
	token, ok := g.token(c)
	if !ok {
		return c.Redirect("/login")
	}

	notice := fallback
	if result, err := g.postRequest(token, payload); err == nil {
		if msg, ok := result[field].(string); ok && msg != "" {
			notice = msg
		}
	}

	g.setFlash(c, notice)
	return c.Redirect("/dashboard")
}

func (g *Gateway) postRequest(token string, payload fiber.Map) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", g.apiURL+"/request", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

type leaveItem struct {
	ID        uint   `json:"ID"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// fetchLeaves loads the user's leave history for the dashboard. Best
// effort: on any failure the dashboard simply shows no history.
func (g *Gateway) fetchLeaves(token string) []leaveItem {
	req, err := http.NewRequest("GET", g.apiURL+"/leaves", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var out struct {
		Data []leaveItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil
	}
	return out.Data
}

func (g *Gateway) token(c *fiber.Ctx) (string, bool) {
	sess, err := g.store.Get(c)
	if err != nil {
		return "", false
	}
	token, ok := sess.Get("token").(string)
	return token, ok && token != ""
}

func (g *Gateway) setFlash(c *fiber.Ctx, msg string) {
	if sess, err := g.store.Get(c); err == nil {
		sess.Set("flash", msg)
		sess.Save()
	}
}

// popFlash returns the pending one-shot notice and clears it.
func (g *Gateway) popFlash(c *fiber.Ctx) string {
	sess, err := g.store.Get(c)
	if err != nil {
		return ""
	}
	msg, _ := sess.Get("flash").(string)
	if msg != "" {
		sess.Delete("flash")
		sess.Save()
	}
	return msg
}
