package stubapi

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"medibill/internal/domain"
)

// account is a stored user with its password hash.
type account struct {
	domain.User
	passwordHash []byte
}

// Store is the stub backend's in-memory state. It is intentionally not
// durable: the stub exists for tests and local development.
type Store struct {
	mu sync.Mutex

	users    map[string]*account
	products map[int64]*domain.Product
	stock    []*domain.StockBatch
	details  map[int64]*domain.Details
	bills    map[int64]*domain.Bill
	items    map[int64][]domain.BillItem

	nextUserID    int64
	nextProductID int64
	nextBillID    int64
	nextItemID    int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:    map[string]*account{},
		products: map[int64]*domain.Product{},
		details:  map[int64]*domain.Details{},
		bills:    map[int64]*domain.Bill{},
		items:    map[int64][]domain.BillItem{},
	}
}

// CreateUser registers an account with a bcrypt-hashed password.
func (s *Store) CreateUser(username, password, name string, role domain.UserRole) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s.nextUserID++
	acct := &account{
		User:         domain.User{UserID: s.nextUserID, Username: username, Name: name, Role: role},
		passwordHash: hash,
	}
	s.users[username] = acct
	u := acct.User
	return &u, nil
}

// Authenticate verifies credentials and returns the user.
func (s *Store) Authenticate(username, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	u := acct.User
	return &u, nil
}

// AddProduct stores a product and assigns its id.
func (s *Store) AddProduct(p domain.Product) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextProductID++
	p.ID = s.nextProductID
	s.products[p.ID] = &p
	out := p
	return &out
}

// Products lists all products.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}

// Product returns one product by id.
func (s *Store) Product(id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *p
	return &out, nil
}

// UpdateProduct overwrites a product's fields, keeping its id.
func (s *Store) UpdateProduct(id int64, p domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return nil, domain.ErrNotFound
	}
	p.ID = id
	s.products[id] = &p
	out := p
	return &out, nil
}

// DeleteProduct removes a product.
func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// SearchProducts filters products by case-insensitive name match.
func (s *Store) SearchProducts(req domain.SearchRequest) *domain.ProductPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Product
	needle := strings.ToLower(req.SearchText)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, *p)
		}
	}
	page := &domain.ProductPage{}
	page.Content, page.TotalPages, page.Number, page.Last = paginate(matched, req.Page, req.Size)
	return page
}

// AddStock stores a batch row, merging quantity into an existing
// (product, batch) pair for the same user.
func (s *Store) AddStock(b domain.StockBatch) *domain.StockBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.stock {
		if existing.Product.ID == b.Product.ID && existing.BatchNo == b.BatchNo && existing.UserID == b.UserID {
			existing.Quantity += b.Quantity
			out := *existing
			return &out
		}
	}
	if p, ok := s.products[b.Product.ID]; ok {
		b.Product = *p
	}
	copied := b
	s.stock = append(s.stock, &copied)
	out := copied
	return &out
}

// StockForUser lists a user's batches.
func (s *Store) StockForUser(userID int64) []domain.StockBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.StockBatch
	for _, b := range s.stock {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out
}

// UpdateStock sets a batch's remaining quantity.
func (s *Store) UpdateStock(upd domain.StockUpdate) (*domain.StockBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.stock {
		if b.Product.ID == upd.ProductID && b.BatchNo == upd.BatchNo && b.UserID == upd.UserID {
			b.Quantity = upd.Quantity
			if upd.ExpiryDate != "" {
				b.ExpiryDate = upd.ExpiryDate
			}
			out := *b
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SearchStock filters batches by case-insensitive product name match.
func (s *Store) SearchStock(req domain.SearchRequest) *domain.StockPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.StockBatch
	needle := strings.ToLower(req.SearchText)
	for _, b := range s.stock {
		if strings.Contains(strings.ToLower(b.Product.Name), needle) {
			matched = append(matched, *b)
		}
	}
	page := &domain.StockPage{}
	page.Content, page.TotalPages, page.Number, page.Last = paginate(matched, req.Page, req.Size)
	return page
}

// SaveDetails stores the distributor profile for a user.
func (s *Store) SaveDetails(userID int64, d domain.Details) *domain.Details {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.UserID = userID
	s.details[userID] = &d
	out := d
	return &out
}

// Details returns the distributor profile for a user.
func (s *Store) Details(userID int64) (*domain.Details, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.details[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *d
	return &out, nil
}

// DeleteDetails removes the distributor profile for a user.
func (s *Store) DeleteDetails(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.details[userID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.details, userID)
	return nil
}

// CreateBill stores a bill header and assigns its id.
func (s *Store) CreateBill(b domain.Bill) *domain.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextBillID++
	b.ID = s.nextBillID
	b.Items = nil
	b.TotalAmount = 0
	s.bills[b.ID] = &b
	out := b
	return &out
}

// AddBillItem appends a line to a bill and rolls its amount into the total.
func (s *Store) AddBillItem(item domain.BillItem) (*domain.BillItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bill, ok := s.bills[item.BillID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.nextItemID++
	item.ID = s.nextItemID
	s.items[item.BillID] = append(s.items[item.BillID], item)
	bill.TotalAmount += item.Amount
	out := item
	return &out, nil
}

// Bill returns a bill with its items.
func (s *Store) Bill(id int64) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bill, ok := s.bills[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *bill
	out.Items = append([]domain.BillItem(nil), s.items[id]...)
	return &out, nil
}

// BillsForUser lists a user's bills, items included.
func (s *Store) BillsForUser(userID int64) []domain.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Bill
	for _, b := range s.bills {
		if b.UserID == userID {
			bill := *b
			bill.Items = append([]domain.BillItem(nil), s.items[b.ID]...)
			out = append(out, bill)
		}
	}
	return out
}

// paginate slices a result set the way the backend's page responses do.
func paginate[T any](all []T, page, size int) (content []T, totalPages, number int, last bool) {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}
	totalPages = (len(all) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	start := page * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], totalPages, page, page >= totalPages-1
}
