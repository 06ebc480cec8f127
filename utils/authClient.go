package utils

import (
	"encoding/json"
	"fmt"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// Principal is the authenticated identity returned by the auth service
type Principal struct {
	Active   bool   `json:"active"`
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// IntrospectToken verifies a bearer token against the external auth
// service's introspection endpoint
func IntrospectToken(token string) (*Principal, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"token": token}).
		Post(config.AppConfig.AuthServiceURL + "/introspect")
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("auth service returned %d", resp.StatusCode())
	}

	var principal Principal
	if err := json.Unmarshal(resp.Body(), &principal); err != nil {
		return nil, fmt.Errorf("invalid introspection response: %v", err)
	}

	return &principal, nil
}
