package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"campus-services/config"

	"github.com/joho/godotenv"
)

// One-shot probe: log in and fire a single chat request at /request.
func main() {
	godotenv.Load()

	apiURL := config.GetEnv("API_URL", "http://127.0.0.1:3000")
	email := config.GetEnv("SMOKE_EMAIL", "admin@campus.local")
	password := config.GetEnv("SMOKE_PASSWORD", "admin123")

	token, err := login(apiURL, email, password)
	if err != nil {
		log.Fatalln("login failed:", err)
	}

	body, _ := json.Marshal(map[string]any{
		"agent_type": "nlp",
		"query":      "When is the next backlog exam?",
	})
	req, _ := http.NewRequest("POST", apiURL+"/request", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalln("request failed:", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	fmt.Println("Response:", string(raw))
}

func login(apiURL, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(apiURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}
