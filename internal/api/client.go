// Package api is a thin client for the target site's account REST API, used
// to arrange accounts without driving the registration UI.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/storefrontqa/storefront-e2e/internal/person"
)

// AccountClient manages accounts on the application under test.
type AccountClient interface {
	CreateAccount(user person.Person) error
	DeleteAccount(email, password string) error
}

// HTTPAccountClient implements AccountClient over the site's form API.
type HTTPAccountClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAccountClient creates a client for the given base URL. The API is
// served from the apex domain, not the www host.
func NewAccountClient(baseURL string) *HTTPAccountClient {
	return &HTTPAccountClient{
		baseURL:    strings.Replace(baseURL, "www.", "", 1),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// apiResponse is the site's envelope; HTTP status is always 200 and the real
// outcome lives in responseCode.
type apiResponse struct {
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
}

// CreateAccount registers a user through the createAccount endpoint.
func (c *HTTPAccountClient) CreateAccount(user person.Person) error {
	form := url.Values{
		"name":          {user.Name},
		"email":         {user.Email},
		"password":      {user.Password},
		"title":         {user.Title},
		"birth_date":    {user.Day},
		"birth_month":   {user.Month},
		"birth_year":    {user.Year},
		"firstname":     {user.FirstName},
		"lastname":      {user.LastName},
		"company":       {user.Company},
		"address1":      {user.Address1},
		"address2":      {user.Address2},
		"country":       {user.Country},
		"zipcode":       {user.Zipcode},
		"state":         {user.State},
		"city":          {user.City},
		"mobile_number": {user.Mobile},
	}

	resp, err := c.postForm("/api/createAccount", form)
	if err != nil {
		return fmt.Errorf("create account request failed: %w", err)
	}
	if resp.ResponseCode != http.StatusCreated {
		return fmt.Errorf("create account failed: %d %s", resp.ResponseCode, resp.Message)
	}
	return nil
}

// DeleteAccount removes a user through the deleteAccount endpoint.
func (c *HTTPAccountClient) DeleteAccount(email, password string) error {
	form := url.Values{
		"email":    {email},
		"password": {password},
	}

	resp, err := c.sendForm(http.MethodDelete, "/api/deleteAccount", form)
	if err != nil {
		return fmt.Errorf("delete account request failed: %w", err)
	}
	if resp.ResponseCode != http.StatusOK {
		return fmt.Errorf("delete account failed: %d %s", resp.ResponseCode, resp.Message)
	}
	return nil
}

func (c *HTTPAccountClient) postForm(path string, form url.Values) (*apiResponse, error) {
	return c.sendForm(http.MethodPost, path, form)
}

func (c *HTTPAccountClient) sendForm(method, path string, form url.Values) (*apiResponse, error) {
	req, err := http.NewRequest(method, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response %q: %w", string(body), err)
	}
	return &parsed, nil
}
