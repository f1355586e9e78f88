package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CLUClient implements Classifier against the Azure Conversational Language
// Understanding REST API.
type CLUClient struct {
	endpoint   string
	apiKey     string
	project    string
	deployment string
	httpClient *http.Client
}

const cluAPIVersion = "2023-04-01"

func NewCLUClient(endpoint, apiKey, project, deployment string) *CLUClient {
	return &CLUClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		project:    project,
		deployment: deployment,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type cluConversationItem struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participantId"`
	Text          string `json:"text"`
}

type cluAnalysisInput struct {
	ConversationItem cluConversationItem `json:"conversationItem"`
}

type cluParameters struct {
	ProjectName     string `json:"projectName"`
	DeploymentName  string `json:"deploymentName"`
	StringIndexType string `json:"stringIndexType"`
}

type cluRequest struct {
	Kind          string           `json:"kind"`
	AnalysisInput cluAnalysisInput `json:"analysisInput"`
	Parameters    cluParameters    `json:"parameters"`
}

type cluResponse struct {
	Result struct {
		Prediction struct {
			TopIntent string   `json:"topIntent"`
			Entities  []Entity `json:"entities"`
		} `json:"prediction"`
	} `json:"result"`
}

// Classify sends the utterance to the CLU deployment and returns the
// predicted top intent with its entities.
func (c *CLUClient) Classify(ctx context.Context, text string) (*Result, error) {
	reqBody := cluRequest{
		Kind: "Conversation",
		AnalysisInput: cluAnalysisInput{
			ConversationItem: cluConversationItem{
				ID:            "1",
				ParticipantID: "1",
				Text:          text,
			},
		},
		Parameters: cluParameters{
			ProjectName:     c.project,
			DeploymentName:  c.deployment,
			StringIndexType: "TextElement_V8",
		},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/language/:analyze-conversations?api-version=%s", c.endpoint, cluAPIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clu error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var cluResp cluResponse
	if err := json.Unmarshal(bodyBytes, &cluResp); err != nil {
		return nil, err
	}

	return &Result{
		TopIntent: cluResp.Result.Prediction.TopIntent,
		Entities:  cluResp.Result.Prediction.Entities,
	}, nil
}
