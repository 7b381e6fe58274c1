// Command simulate drives a scripted conversation against a running
// backend, so a full multi-turn flow can be eyeballed without a client.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type sessionData struct {
	SessionID string `json:"session_id"`
}

type chatData struct {
	Intent      string   `json:"intent"`
	Reply       string   `json:"reply"`
	MissingInfo []string `json:"missing_info"`
	ToolCalls   []struct {
		Tool   string `json:"tool"`
		Status string `json:"status"`
	} `json:"tool_calls"`
}

var script = []string{
	"chào bạn",
	"tôi sinh năm 1990, muốn xem hướng nhà",
	"tôi là nam, nhà hướng Đông Nam",
	"tuổi tôi với vợ sinh năm 1992 có hợp nhau không?",
	"tỳ hưu để bàn làm việc có tốt không?",
	"trước cửa nhà tôi có con đường đâm thẳng vào",
}

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "backend base URL")
	delay := flag.Duration("delay", 500*time.Millisecond, "pause between turns")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}

	userColor := color.New(color.FgCyan, color.Bold)
	botColor := color.New(color.FgGreen)
	metaColor := color.New(color.FgYellow)

	sessionID, err := createSession(client, *baseURL)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	metaColor.Printf("session: %s\n\n", sessionID)

	for _, message := range script {
		userColor.Printf("Bạn: %s\n", message)

		reply, err := sendMessage(client, *baseURL, sessionID, message)
		if err != nil {
			log.Fatalf("send message: %v", err)
		}

		metaColor.Printf("  [intent=%s", reply.Intent)
		if len(reply.MissingInfo) > 0 {
			metaColor.Printf(" missing=%v", reply.MissingInfo)
		}
		for _, tc := range reply.ToolCalls {
			metaColor.Printf(" %s:%s", tc.Tool, tc.Status)
		}
		metaColor.Println("]")

		botColor.Printf("Trợ lý: %s\n\n", reply.Reply)
		time.Sleep(*delay)
	}

	if err := deleteSession(client, *baseURL, sessionID); err != nil {
		log.Fatalf("delete session: %v", err)
	}
	metaColor.Println("session closed")
}

func createSession(client *http.Client, baseURL string) (string, error) {
	data, err := post(client, baseURL+"/api/chat/v1/session", nil)
	if err != nil {
		return "", err
	}
	var session sessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return "", err
	}
	return session.SessionID, nil
}

func sendMessage(client *http.Client, baseURL, sessionID, message string) (*chatData, error) {
	body, _ := json.Marshal(map[string]string{
		"session_id": sessionID,
		"message":    message,
	})
	data, err := post(client, baseURL+"/api/chat/v1/message", body)
	if err != nil {
		return nil, err
	}
	var reply chatData
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func deleteSession(client *http.Client, baseURL, sessionID string) error {
	req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/chat/v1/session/"+sessionID, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func post(client *http.Client, url string, body []byte) (json.RawMessage, error) {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("api error: %s", envelope.Message)
	}
	return envelope.Data, nil
}
