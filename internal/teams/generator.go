package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"matchday/backend/internal/models"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Generator asks an externally hosted language model to propose a two-team
// split for a roster snapshot. The model is a black box: it receives a
// textual roster description and must answer with a JSON assignment in the
// same shape Split produces.
type Generator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGenerator builds a Generator for the given Groq-compatible API key
// and model name.
func NewGenerator(apiKey, model string) *Generator {
	return &Generator{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// aiAssignment is the JSON shape the model is instructed to return.
type aiAssignment struct {
	Team1 []aiMember `json:"team1"`
	Team2 []aiMember `json:"team2"`
}

type aiMember struct {
	SignupID   uint   `json:"signup_id"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
}

// Generate requests a balanced two-team assignment for the given active
// entrants. Entrants backed by a known player carry their skill profile
// into the prompt; guests are described by name only.
func (g *Generator) Generate(ctx context.Context, entrants []models.Signup) (Assignment, error) {
	if len(entrants) < 2 {
		return Assignment{}, fmt.Errorf("at least 2 active players are needed to form teams")
	}

	body := chatRequest{
		Model:       g.model,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a soccer coach building two balanced teams for a friendly match. Answer only with JSON."},
			{Role: "user", Content: buildPrompt(entrants)},
		},
	}
	body.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(body)
	if err != nil {
		return Assignment{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return Assignment{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return Assignment{}, fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Assignment{}, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return Assignment{}, fmt.Errorf("model error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || len(parsed.Choices) == 0 {
		return Assignment{}, fmt.Errorf("model returned status %d with no choices", resp.StatusCode)
	}

	var result aiAssignment
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &result); err != nil {
		return Assignment{}, fmt.Errorf("decode assignment: %w", err)
	}
	return result.toAssignment(entrants), nil
}

func (a aiAssignment) toAssignment(entrants []models.Signup) Assignment {
	byID := make(map[uint]models.Signup, len(entrants))
	for _, su := range entrants {
		byID[su.ID] = su
	}
	var out Assignment
	add := func(members []aiMember, team int) {
		for _, m := range members {
			su, ok := byID[m.SignupID]
			if !ok {
				continue // the model invented an entrant; drop it
			}
			positions := su.Positions
			if p, ok := models.ParsePosition(m.Position); ok {
				positions = []models.Position{p}
			}
			out.Members = append(out.Members, Member{
				SignupID:   su.ID,
				PlayerName: su.PlayerName,
				Positions:  positions,
				Team:       team,
			})
		}
	}
	add(a.Team1, Team1)
	add(a.Team2, Team2)
	return out
}

func buildPrompt(entrants []models.Signup) string {
	var b strings.Builder
	b.WriteString("Build two balanced teams from the players below. Rules:\n")
	b.WriteString("- at most one goalkeeper per team\n")
	b.WriteString("- respect declared positions where possible\n")
	b.WriteString("- spread strong and weak players evenly\n\n")
	b.WriteString("Players:\n")
	for i, su := range entrants {
		fmt.Fprintf(&b, "%d. id=%d name=%s", i+1, su.ID, su.PlayerName)
		if su.IsGuest {
			b.WriteString(" (guest)")
		}
		if len(su.Positions) > 0 {
			parts := make([]string, len(su.Positions))
			for j, p := range su.Positions {
				parts[j] = string(p)
			}
			fmt.Fprintf(&b, " positions=%s", strings.Join(parts, ","))
		}
		if su.Player != nil {
			p := su.Player
			fmt.Fprintf(&b, " primary=%s speed=%d control=%d condition=%d attitude=%d overall=%d",
				p.PrimaryPosition, p.Speed, p.Control, p.PhysicalCondition, p.Attitude, p.OverallRating())
		}
		b.WriteString("\n")
	}
	b.WriteString("\nRespond with JSON only, in this exact shape:\n")
	b.WriteString(`{"team1":[{"signup_id":1,"player_name":"...","position":"goalkeeper|defender|midfielder|forward"}],"team2":[...]}`)
	return b.String()
}
