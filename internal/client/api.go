package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"dahanu/internal/models"
)

// APIClient talks to the dispatch API. Read paths distinguish three
// outcomes: transport failure (the static fallback dataset is substituted),
// server error response (propagated as an error), and success (the server
// payload is used). The fallback is a last-resort static dataset, not a
// cache.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client for the given base URL, e.g.
// "http://localhost:5000/api".
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		// No timeout: in-flight requests are never cancelled, a hung
		// request stalls only its own code path.
		http: &http.Client{},
	}
}

// getWithFallback implements the read-path result split. Only a transport
// failure substitutes the fallback; an error status from the server is a
// real error.
func getWithFallback[T any](c *APIClient, path string, fallback T) (T, error) {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fallback, nil
	}
	defer resp.Body.Close()

	var zero T
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("GET %s: server returned status %d", path, resp.StatusCode)
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return zero, fmt.Errorf("GET %s: failed to decode response: %w", path, err)
	}
	return payload, nil
}

// WriteResult is the success flag returned by the mutation endpoints.
type WriteResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// send fires a mutation. A transport failure is assumed to have succeeded
// (optimistic): the caller's local mutation stands and is never rolled back.
func (c *APIClient) send(method, path string, body interface{}) WriteResult {
	payload, err := json.Marshal(body)
	if err != nil {
		return WriteResult{Success: false, Error: err.Error()}
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return WriteResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure: assume optimistic success.
		return WriteResult{Success: true}
	}
	defer resp.Body.Close()

	var result WriteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return WriteResult{Success: false, Error: err.Error()}
	}
	return result
}

// FetchCategories loads the category tree, or the seed tree when the
// network is unreachable.
func (c *APIClient) FetchCategories() ([]models.Category, error) {
	return getWithFallback(c, "/categories", FallbackCategories())
}

// FetchVendors loads the approved vendors, or the seed vendors.
func (c *APIClient) FetchVendors() ([]models.Vendor, error) {
	return getWithFallback(c, "/vendors", FallbackVendors())
}

// FetchBanners loads the banners, or the seed banners.
func (c *APIClient) FetchBanners() ([]models.Banner, error) {
	return getWithFallback(c, "/banners", FallbackBanners())
}

// FetchRiders loads all riders. The fallback fleet is empty.
func (c *APIClient) FetchRiders() ([]models.Rider, error) {
	return getWithFallback(c, "/riders", []models.Rider{})
}

// FetchAllOrders loads all orders, or the seed orders.
func (c *APIClient) FetchAllOrders() ([]models.Order, error) {
	return getWithFallback(c, "/orders", FallbackOrders())
}

// AssignRider patches the order's rider reference. Unlike the other write
// paths the caller must gate its local mutation on the returned flag.
func (c *APIClient) AssignRider(orderID, riderID string) WriteResult {
	return c.send(http.MethodPatch, "/orders/"+orderID+"/assign", jsonMap{"riderId": riderID})
}

// CreateOrder submits a new order.
func (c *APIClient) CreateOrder(in models.OrderInput) WriteResult {
	return c.send(http.MethodPost, "/orders", in)
}

// UpdateOrderStatus submits a vendor-driven status transition.
func (c *APIClient) UpdateOrderStatus(orderID string, status models.OrderStatus) WriteResult {
	return c.send(http.MethodPatch, "/orders/"+orderID+"/status", jsonMap{"status": status})
}

// RegisterRider submits a rider registration.
func (c *APIClient) RegisterRider(in models.RiderInput) WriteResult {
	return c.send(http.MethodPost, "/riders/register", in)
}

// UpdateRiderStatus submits the rider's own availability toggle.
func (c *APIClient) UpdateRiderStatus(riderID string, status models.RiderStatus) WriteResult {
	return c.send(http.MethodPatch, "/riders/"+riderID+"/status", jsonMap{"status": status})
}

// UpdateRiderLocation submits the rider's reported coordinates.
func (c *APIClient) UpdateRiderLocation(riderID string, lat, lng float64) WriteResult {
	return c.send(http.MethodPatch, "/riders/"+riderID+"/location", jsonMap{"lat": lat, "lng": lng})
}

// ApproveRider submits the admin approval action.
func (c *APIClient) ApproveRider(riderID string) WriteResult {
	return c.send(http.MethodPatch, "/riders/"+riderID+"/approve", jsonMap{})
}

type jsonMap map[string]interface{}
