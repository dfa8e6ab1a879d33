package internal

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/sistemas-sl/sapbridge/internal/model"
)

type ISap interface {
	EnsureSession(ctx context.Context) error
	SubmitDocument(ctx context.Context, doc model.SalesDocument) (int, string, error)
}

// SapService talks to the SAP Service Layer. Session expiry is handled
// transparently: a 401 on the orders endpoint triggers one re-login and one
// retry of the same request, nothing more.
type SapService struct {
	client  *http.Client
	session *Session
	logger  *zap.SugaredLogger

	loginURL  string
	ordersURL string
	companyDB string
	username  string
	password  string
}

func NewSapService(c *Config, session *Session, logger *zap.SugaredLogger) *SapService {
	return &SapService{
		client: &http.Client{
			Timeout: c.HTTPTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: c.SkipTLSVerify},
			},
		},
		session:   session,
		logger:    logger,
		loginURL:  c.SapBaseURL + c.SapLoginPath,
		ordersURL: c.SapBaseURL + c.SapOrdersPath,
		companyDB: c.SapCompanyDB,
		username:  c.SapUser,
		password:  c.SapPassword,
	}
}

type loginRequest struct {
	CompanyDB string `json:"CompanyDB"`
	Password  string `json:"Password"`
	UserName  string `json:"UserName"`
}

type loginResponse struct {
	SessionID *string `json:"SessionId"`
}

type ordersResponse struct {
	DocNum *int `json:"DocNum"`
}

func (s *SapService) login(ctx context.Context) error {
	body, err := json.Marshal(loginRequest{
		CompanyDB: s.companyDB,
		Password:  s.password,
		UserName:  s.username,
	})
	if err != nil {
		return err
	}

	status, respBody, err := s.post(ctx, s.loginURL, body, false)
	if err != nil {
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &AuthError{StatusCode: status}
	}

	var res loginResponse
	if err = json.Unmarshal(respBody, &res); err != nil {
		return fmt.Errorf("bad login response: %w", err)
	}
	if res.SessionID == nil || *res.SessionID == "" {
		return ErrNoSessionID
	}

	s.session.Set(*res.SessionID)
	return nil
}

// EnsureSession is a presence check only. A stored id is assumed valid until
// a call proves otherwise.
func (s *SapService) EnsureSession(ctx context.Context) error {
	if s.session.Active() {
		return nil
	}
	return s.login(ctx)
}

// SubmitDocument serializes the document once and posts it to the orders
// endpoint. On 401 it re-logs-in and retries the same bytes exactly once.
// Returns the DocNum confirmed by SAP and the JSON that was sent.
func (s *SapService) SubmitDocument(ctx context.Context, doc model.SalesDocument) (int, string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return 0, "", err
	}
	jsonData := string(payload)

	s.logger.Infof("Sending JSON to SAP: %s", jsonData)

	status, respBody, err := s.post(ctx, s.ordersURL, payload, true)
	if err != nil {
		return 0, "", err
	}

	if status == http.StatusUnauthorized {
		if err = s.login(ctx); err != nil {
			return 0, "", err
		}
		status, respBody, err = s.post(ctx, s.ordersURL, payload, true)
		if err != nil {
			return 0, "", err
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		submitErr := &SubmitError{StatusCode: status, Response: string(respBody), Payload: jsonData}
		s.logger.Error(submitErr.Error())
		return 0, "", submitErr
	}

	var res ordersResponse
	if err = json.Unmarshal(respBody, &res); err != nil {
		return 0, "", &DocNumError{Payload: jsonData}
	}
	if res.DocNum == nil {
		return 0, "", &DocNumError{Payload: jsonData}
	}

	return *res.DocNum, jsonData, nil
}

func (s *SapService) post(ctx context.Context, url string, body []byte, withSession bool) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if withSession {
		req.Header.Set("Cookie", "B1SESSION="+s.session.ID())
	}

	res, err := s.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, err
	}

	return res.StatusCode, respBody, nil
}
