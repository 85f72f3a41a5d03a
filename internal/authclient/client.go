package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client parle au service externe d'authentification et d'avis
// (FastAPI). Ce dépôt ne fait que le consommer : aucune logique de
// comptes ou de mots de passe n'habite ici.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Response relaie le statut et le corps bruts du service externe.
type Response struct {
	Status int
	Body   []byte
}

func (r Response) OK() bool { return r.Status >= 200 && r.Status < 300 }

// Decode désérialise le corps dans v.
func (r Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

func (c *Client) do(req *http.Request) (Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: resp.StatusCode, Body: body}, nil
}

// Login envoie POST /token en form-encodé, comme l'exige le service.
func (c *Client) Login(ctx context.Context, username, password string) (Response, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// Register relaie POST /register en JSON.
func (c *Client) Register(ctx context.Context, username, password string) (Response, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", bytes.NewReader(payload))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// Me récupère l'utilisateur courant avec le bearer token.
func (c *Client) Me(ctx context.Context, token string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.do(req)
}

// GetReviews relaie GET /reviews/<productID>.
func (c *Client) GetReviews(ctx context.Context, productID string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/reviews/%s", c.baseURL, productID), nil)
	if err != nil {
		return Response{}, err
	}
	return c.do(req)
}

// PostReview relaie POST /reviews/<productID> avec le bearer token du client.
func (c *Client) PostReview(ctx context.Context, token, productID string, body []byte) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/reviews/%s", c.baseURL, productID), bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req)
}
