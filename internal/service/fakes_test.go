package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avc/checkout-gateway/internal/domain"
)

// memDB хранилище в памяти. WithinTransaction сериализует вызовы
// (аналог SELECT ... FOR UPDATE) и откатывает изменения при ошибке.
type memDB struct {
	mu sync.Mutex

	clients map[uuid.UUID]domain.Client
	cards   map[uuid.UUID]domain.TokenizedCard
	orders  map[uuid.UUID]domain.Order
	txs     []domain.PaymentTransaction

	// conflicts сколько следующих вставок вернут ErrAttemptConflict
	conflicts int
	commits   int
	rollbacks int
}

func newMemDB() *memDB {
	return &memDB{
		clients: make(map[uuid.UUID]domain.Client),
		cards:   make(map[uuid.UUID]domain.TokenizedCard),
		orders:  make(map[uuid.UUID]domain.Order),
	}
}

type memSnapshot struct {
	clients map[uuid.UUID]domain.Client
	cards   map[uuid.UUID]domain.TokenizedCard
	orders  map[uuid.UUID]domain.Order
	txs     []domain.PaymentTransaction
}

func (db *memDB) snapshot() memSnapshot {
	s := memSnapshot{
		clients: make(map[uuid.UUID]domain.Client, len(db.clients)),
		cards:   make(map[uuid.UUID]domain.TokenizedCard, len(db.cards)),
		orders:  make(map[uuid.UUID]domain.Order, len(db.orders)),
		txs:     append([]domain.PaymentTransaction(nil), db.txs...),
	}
	for k, v := range db.clients {
		s.clients[k] = v
	}
	for k, v := range db.cards {
		s.cards[k] = v
	}
	for k, v := range db.orders {
		s.orders[k] = v
	}
	return s
}

func (db *memDB) restore(s memSnapshot) {
	db.clients, db.cards, db.orders, db.txs = s.clients, s.cards, s.orders, s.txs
}

func (db *memDB) WithinTransaction(ctx context.Context, fn func(ctx context.Context, store domain.TxStore) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	snap := db.snapshot()
	if err := fn(ctx, memStore{db: db}); err != nil {
		db.restore(snap)
		db.rollbacks++
		return err
	}
	db.commits++
	return nil
}

func (db *memDB) addClient(username string) domain.Client {
	db.mu.Lock()
	defer db.mu.Unlock()

	c := domain.Client{ID: uuid.New(), Username: username, Email: username + "@example.com", IsActive: true}
	db.clients[c.ID] = c
	return c
}

func (db *memDB) addCard(clientID uuid.UUID, lastFour string) domain.TokenizedCard {
	db.mu.Lock()
	defer db.mu.Unlock()

	c := domain.TokenizedCard{ID: uuid.New(), ClientID: clientID, Token: uuid.NewString(), LastFour: lastFour}
	db.cards[c.ID] = c
	return c
}

func (db *memDB) addOrder(clientID, cardID uuid.UUID, total string) domain.Order {
	db.mu.Lock()
	defer db.mu.Unlock()

	o := domain.Order{
		ID:              uuid.New(),
		ClientID:        clientID,
		CardID:          cardID,
		TotalAmount:     decimal.RequireFromString(total),
		DeliveryAddress: "Calle Mayor 1",
	}
	db.orders[o.ID] = o
	return o
}

func (db *memDB) order(id uuid.UUID) domain.Order {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.orders[id]
}

func (db *memDB) transactions(orderID uuid.UUID) []domain.PaymentTransaction {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.PaymentTransaction
	for _, tx := range db.txs {
		if tx.OrderID == orderID {
			out = append(out, tx)
		}
	}
	return out
}

type memStore struct {
	db *memDB
}

func (s memStore) Clients() domain.ClientRepository   { return memClients(s) }
func (s memStore) Cards() domain.CardRepository       { return memCards(s) }
func (s memStore) Orders() domain.OrderRepository     { return memOrders(s) }
func (s memStore) Payments() domain.PaymentRepository { return memPayments(s) }

type memClients memStore

func (r memClients) CreateClient(_ context.Context, client *domain.Client) (*domain.Client, error) {
	c := *client
	c.ID = uuid.New()
	r.db.clients[c.ID] = c
	return &c, nil
}

func (r memClients) GetClientByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	c, ok := r.db.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return &c, nil
}

func (r memClients) GetClientByUsername(_ context.Context, username string) (*domain.Client, error) {
	for _, c := range r.db.clients {
		if c.Username == username {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

type memCards memStore

func (r memCards) InsertCard(_ context.Context, card *domain.TokenizedCard) (*domain.TokenizedCard, error) {
	for _, c := range r.db.cards {
		if c.Token == card.Token {
			return nil, domain.ErrDuplicateCard
		}
	}
	c := *card
	c.ID = uuid.New()
	r.db.cards[c.ID] = c
	return &c, nil
}

func (r memCards) GetCardByID(_ context.Context, id uuid.UUID) (*domain.TokenizedCard, error) {
	c, ok := r.db.cards[id]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	return &c, nil
}

func (r memCards) ListCardsByClient(_ context.Context, clientID uuid.UUID) ([]*domain.TokenizedCard, error) {
	var out []*domain.TokenizedCard
	for _, c := range r.db.cards {
		if c.ClientID == clientID {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

type memOrders memStore

func (r memOrders) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	o := *order
	o.ID = uuid.New()
	r.db.orders[o.ID] = o
	return &o, nil
}

func (r memOrders) GetOrderByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := r.db.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &o, nil
}

func (r memOrders) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.GetOrderByID(ctx, id)
}

func (r memOrders) BlockOrder(_ context.Context, id uuid.UUID) error {
	o, ok := r.db.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.IsBlocked = true
	r.db.orders[id] = o
	return nil
}

func (r memOrders) ListOrderSummaries(_ context.Context, clientID uuid.UUID) ([]*domain.OrderSummary, error) {
	return nil, nil
}

type memPayments memStore

func (r memPayments) MaxAttempt(_ context.Context, orderID uuid.UUID) (int, error) {
	maxNo := 0
	for _, tx := range r.db.txs {
		if tx.OrderID == orderID && tx.AttemptNo > maxNo {
			maxNo = tx.AttemptNo
		}
	}
	return maxNo, nil
}

func (r memPayments) HasSuccess(_ context.Context, orderID uuid.UUID) (bool, error) {
	for _, tx := range r.db.txs {
		if tx.OrderID == orderID && tx.Status == domain.PaymentStatusSuccess {
			return true, nil
		}
	}
	return false, nil
}

func (r memPayments) AppendTransaction(_ context.Context, tx *domain.PaymentTransaction) error {
	if r.db.conflicts > 0 {
		r.db.conflicts--
		return domain.ErrAttemptConflict
	}
	for _, existing := range r.db.txs {
		if existing.OrderID == tx.OrderID && existing.AttemptNo == tx.AttemptNo {
			return domain.ErrAttemptConflict
		}
	}
	r.db.txs = append(r.db.txs, *tx)
	return nil
}

func (r memPayments) ListTransactions(ctx context.Context, orderID uuid.UUID) ([]*domain.PaymentTransaction, error) {
	var out []*domain.PaymentTransaction
	for _, tx := range r.db.txs {
		if tx.OrderID == orderID {
			tx := tx
			out = append(out, &tx)
		}
	}
	return out, nil
}

// mapPrefs PreferenceProvider поверх map; отсутствующий ключ дает ErrPreferenceMissing
type mapPrefs struct {
	mu     sync.Mutex
	values map[string]int
}

func newPrefs(values map[string]int) *mapPrefs {
	return &mapPrefs{values: values}
}

func (p *mapPrefs) GetInt(_ context.Context, key string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.values[key]
	if !ok {
		return 0, domain.ErrPreferenceMissing
	}
	return v, nil
}

func (p *mapPrefs) set(key string, value int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}

// recordingNotifier запоминает поставленные в очередь уведомления
type recordingNotifier struct {
	mu      sync.Mutex
	notices []domain.RejectionNotice
}

func (n *recordingNotifier) NotifyRejection(notice domain.RejectionNotice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notices)
}
