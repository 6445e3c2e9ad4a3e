package client

import (
	"fmt"
	"log"
	"sync"
	"time"

	"dahanu/internal/models"
)

// Store is the per-session data cache: the sole owner of the entity copies
// a running session works with. It is populated once at startup and then
// mutated locally on every user action; the server is the owner of durable
// truth and the two are only reconciled by a full reload.
//
// Every mutation is a reducer-style replacement: the affected collection is
// rebuilt into a fresh slice and swapped in whole.
type Store struct {
	api *APIClient

	mu         sync.RWMutex
	categories []models.Category
	vendors    []models.Vendor
	riders     []models.Rider
	orders     []models.Order
	banners    []models.Banner

	refreshTicker *time.Ticker
	done          chan struct{}
	closeOnce     sync.Once
}

// NewStore creates an empty store backed by the given API client.
func NewStore(api *APIClient) *Store {
	return &Store{
		api:  api,
		done: make(chan struct{}),
	}
}

// Load fetches all five collections concurrently. Failures are collected
// and logged once at the aggregate; whatever fetched successfully stays,
// leaving the store partially populated. There is no retry and no
// per-collection recovery.
func (s *Store) Load() {
	var wg sync.WaitGroup
	errs := make([]error, 5)

	wg.Add(5)
	go func() {
		defer wg.Done()
		cats, err := s.api.FetchCategories()
		if err != nil {
			errs[0] = err
			return
		}
		s.mu.Lock()
		s.categories = cats
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		vends, err := s.api.FetchVendors()
		if err != nil {
			errs[1] = err
			return
		}
		s.mu.Lock()
		s.vendors = vends
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		bans, err := s.api.FetchBanners()
		if err != nil {
			errs[2] = err
			return
		}
		s.mu.Lock()
		s.banners = bans
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		rids, err := s.api.FetchRiders()
		if err != nil {
			errs[3] = err
			return
		}
		s.mu.Lock()
		s.riders = rids
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		ords, err := s.api.FetchAllOrders()
		if err != nil {
			errs[4] = err
			return
		}
		s.mu.Lock()
		s.orders = ords
		s.mu.Unlock()
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.Printf("Critical error loading data: %v", err)
			break
		}
	}
}

// StartRefresh launches the periodic refresh ticker. The poll is a
// placeholder and performs no work.
func (s *Store) StartRefresh(interval time.Duration) {
	s.refreshTicker = time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-s.refreshTicker.C:
				// Regular update logic would go here.
			case <-s.done:
				return
			}
		}
	}()
}

// Close stops the refresh ticker. In-flight fetches are not aborted.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.refreshTicker != nil {
			s.refreshTicker.Stop()
		}
	})
}

// Categories returns a copy of the cached category tree.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// Vendors returns a copy of the cached vendor list.
func (s *Store) Vendors() []models.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Vendor(nil), s.vendors...)
}

// Riders returns a copy of the cached rider list.
func (s *Store) Riders() []models.Rider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rider(nil), s.riders...)
}

// Orders returns a copy of the cached order list.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

// Banners returns a copy of the cached banner list.
func (s *Store) Banners() []models.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Banner(nil), s.banners...)
}

// DispatchCandidates projects the cached riders down to the assignable set:
// online and approved, insertion order preserved. Recomputed on every call.
func (s *Store) DispatchCandidates() []models.Rider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.DispatchCandidates(s.riders)
}

// AssignRider dispatches an order to a rider. The local order is patched
// only when the server (or an unreachable network, which counts as success)
// reports the assignment took: rider reference set, rider display name
// resolved from the cached rider list, status forced to ACCEPTED. The
// cached name can diverge from the server row if the rider list is stale;
// it is reconciled on the next full load.
func (s *Store) AssignRider(orderID, riderID string) error {
	result := s.api.AssignRider(orderID, riderID)
	if !result.Success {
		return fmt.Errorf("rider assignment rejected: %s", result.Error)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var riderName string
	for _, r := range s.riders {
		if r.ID == riderID {
			riderName = r.Name
			break
		}
	}

	next := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		if o.ID == orderID {
			id := riderID
			o.RiderID = &id
			o.RiderName = riderName
			o.Status = models.StatusAccepted
		}
		next[i] = o
	}
	s.orders = next
	return nil
}

// UpdateOrderStatus applies a vendor-driven transition local-first and fires
// the server call without waiting on the outcome. There is no rollback if
// the server later disagrees.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) {
	s.mu.Lock()
	next := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		if o.ID == orderID {
			o.Status = status
		}
		next[i] = o
	}
	s.orders = next
	s.mu.Unlock()

	go s.api.UpdateOrderStatus(orderID, status)
}

// PlaceOrder builds a new PENDING order, prepends it locally, and submits it
// optimistically.
func (s *Store) PlaceOrder(in models.OrderInput) (*models.Order, error) {
	order, err := models.NewOrder(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	next := make([]models.Order, 0, len(s.orders)+1)
	next = append(next, *order)
	next = append(next, s.orders...)
	s.orders = next
	s.mu.Unlock()

	go s.api.CreateOrder(in)
	return order, nil
}

// RegisterRider builds an unapproved OFFLINE rider, appends it locally, and
// submits the registration optimistically.
func (s *Store) RegisterRider(in models.RiderInput) (*models.Rider, error) {
	rider, err := models.NewRider(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.riders = append(append([]models.Rider(nil), s.riders...), *rider)
	s.mu.Unlock()

	go s.api.RegisterRider(in)
	return rider, nil
}

// ApproveRider marks the cached rider approved and resets it to OFFLINE,
// moving it from the approval queue into the active fleet without making it
// a dispatch candidate. The server call is fired without waiting.
func (s *Store) ApproveRider(riderID string) {
	s.mu.Lock()
	next := make([]models.Rider, len(s.riders))
	for i, r := range s.riders {
		if r.ID == riderID {
			r.IsApproved = true
			r.Status = models.RiderOffline
		}
		next[i] = r
	}
	s.riders = next
	s.mu.Unlock()

	go s.api.ApproveRider(riderID)
}

// SetRiderStatus applies the rider's own availability toggle local-first.
func (s *Store) SetRiderStatus(riderID string, status models.RiderStatus) {
	s.mu.Lock()
	next := make([]models.Rider, len(s.riders))
	for i, r := range s.riders {
		if r.ID == riderID {
			r.Status = status
		}
		next[i] = r
	}
	s.riders = next
	s.mu.Unlock()

	go s.api.UpdateRiderStatus(riderID, status)
}

// SetRiderLocation records the rider's coordinates local-first.
func (s *Store) SetRiderLocation(riderID string, lat, lng float64) {
	s.mu.Lock()
	next := make([]models.Rider, len(s.riders))
	for i, r := range s.riders {
		if r.ID == riderID {
			r.Location = models.LatLng{Lat: lat, Lng: lng}
		}
		next[i] = r
	}
	s.riders = next
	s.mu.Unlock()

	go s.api.UpdateRiderLocation(riderID, lat, lng)
}

// UpsertProduct adds or replaces a catalog entry on the cached vendor,
// keyed by display name. Two products sharing a name collide; there is no
// stable product identifier.
func (s *Store) UpsertProduct(vendorID string, product models.Product) error {
	if product.Name == "" || product.Price <= 0 {
		return fmt.Errorf("product requires a name and a positive price")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Vendor, len(s.vendors))
	for i, v := range s.vendors {
		if v.ID == vendorID {
			products := append(models.ProductList{}, v.Products...)
			replaced := false
			for j, p := range products {
				if p.Name == product.Name {
					products[j] = product
					replaced = true
					break
				}
			}
			if !replaced {
				products = append(products, product)
			}
			v.Products = products
		}
		next[i] = v
	}
	s.vendors = next
	return nil
}

// RemoveProduct drops the catalog entry with the given display name from
// the cached vendor.
func (s *Store) RemoveProduct(vendorID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Vendor, len(s.vendors))
	for i, v := range s.vendors {
		if v.ID == vendorID {
			products := make(models.ProductList, 0, len(v.Products))
			for _, p := range v.Products {
				if p.Name != name {
					products = append(products, p)
				}
			}
			v.Products = products
		}
		next[i] = v
	}
	s.vendors = next
}

// AddCategory inserts a node into the cached tree: under its parent when
// ParentID is set, as a new root otherwise. A ParentID matching no cached
// node falls back to a root insert so the entry is never dropped.
func (s *Store) AddCategory(category models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category.ParentID != nil {
		if next, ok := insertUnder(s.categories, *category.ParentID, category); ok {
			s.categories = next
			return
		}
	}
	s.categories = append(append([]models.Category(nil), s.categories...), category)
}

func insertUnder(nodes []models.Category, parentID string, child models.Category) ([]models.Category, bool) {
	next := make([]models.Category, len(nodes))
	inserted := false
	for i, node := range nodes {
		if node.ID == parentID {
			node.SubCategories = append(append([]models.Category(nil), node.SubCategories...), child)
			inserted = true
		} else if sub, ok := insertUnder(node.SubCategories, parentID, child); ok {
			node.SubCategories = sub
			inserted = true
		}
		next[i] = node
	}
	return next, inserted
}

// RemoveCategory removes a node from the cached tree. A root goes down with
// all its descendants; a non-root is unlinked from its parent, siblings
// intact.
func (s *Store) RemoveCategory(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = models.RemoveCategory(s.categories, id)
}
