package clientdirectory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// Client клиент справочника клиентов площадки (CRM)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRoster получает клиентов площадки вместе с питомцами
func (c *Client) GetRoster(ctx context.Context, facilityID string) (domain.Roster, error) {
	endpoint := fmt.Sprintf("%s/internal/facilities/%s/clients", c.baseURL, url.PathEscape(facilityID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrFacilityNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var owners []Owner
	if err := json.NewDecoder(resp.Body).Decode(&owners); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return ToRoster(owners), nil
}

// GetRosterWithGracefulDegradation получает ростер с graceful degradation
// При недоступности справочника возвращает ErrServiceDegraded, и сессия открывается с ростером из запроса
func (c *Client) GetRosterWithGracefulDegradation(ctx context.Context, facilityID string) (domain.Roster, error) {
	c.log.Info("Fetching client roster for facility=%s", facilityID)

	roster, err := c.GetRoster(ctx, facilityID)
	if err != nil {
		if errors.Is(err, ErrFacilityNotFound) {
			c.log.Warn("Facility=%s not found in client directory", facilityID)
			return nil, err
		}

		c.log.Error("Client directory unavailable, applying graceful degradation for facility=%s: %v", facilityID, err)
		return nil, fmt.Errorf("%w: facility=%s, error=%v", ErrServiceDegraded, facilityID, err)
	}

	c.log.Info("Successfully fetched %d clients for facility=%s", len(roster), facilityID)
	return roster, nil
}
