package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

const (
	personsPath = "/api/persons"
	personPath  = "/api/persons/{id}"
	versionPath = "/api/version"
)

// HTTPDirectory is the phonebook directory reached over the REST API.
// It is safe for concurrent use.
type HTTPDirectory struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDirectory builds a directory client for adapterCfg.HTTPAddress. A
// bare host:port is treated as http://host:port.
func NewHTTPDirectory(adapterCfg config.ClientAdapter, logger *logger.Logger) (*HTTPDirectory, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	logger.Debug().Str("base_url", baseURL).Dur("timeout", adapterCfg.RequestTimeout).Msg("directory client configured")

	return &HTTPDirectory{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List fetches every entry with GET /api/persons.
func (h *HTTPDirectory) List(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&persons).
		Get(personsPath)
	if err != nil {
		return nil, fmt.Errorf("list persons request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if persons == nil {
		persons = make([]models.Person, 0)
	}
	return persons, nil
}

// Create stores a new entry with POST /api/persons.
func (h *HTTPDirectory) Create(ctx context.Context, input models.PersonInput) (models.Person, error) {
	var created models.Person

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&created).
		Post(personsPath)
	if err != nil {
		return models.Person{}, fmt.Errorf("create person request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Person{}, err
	}

	return created, nil
}

// Update replaces the entry id with PUT /api/persons/{id}. Only the name and
// number are sent; the path carries the ID. A missing entry yields an error
// wrapping [ErrNotFound].
func (h *HTTPDirectory) Update(ctx context.Context, id int64, person models.Person) (models.Person, error) {
	var updated models.Person

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(person.Input()).
		SetResult(&updated).
		Put(personPath)
	if err != nil {
		return models.Person{}, fmt.Errorf("update person request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Person{}, err
	}

	return updated, nil
}

// Delete removes the entry id with DELETE /api/persons/{id}.
func (h *HTTPDirectory) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(personPath)
	if err != nil {
		return fmt.Errorf("delete person request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version returns the server version from GET /api/version.
func (h *HTTPDirectory) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
