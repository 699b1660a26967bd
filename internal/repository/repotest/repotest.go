// Package repotest berisi implementasi in-memory dari semua repository,
// dipakai test service & handler tanpa database.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/internal/repository"

	"github.com/google/uuid"
)

// DB adalah "database" bersama untuk semua fake repository
type DB struct {
	mu        sync.Mutex
	users     map[string]*models.User
	mitras    map[string]*models.Mitra
	layanans  map[string]*models.Layanan
	offerings []*models.MitraLayanan
	tagihans  map[string]*models.Tagihan
	topups    map[string]*models.TopUp
	chats     []*models.Chat
	admins    []models.AdminCredential

	// FailAddSaldo kalau diisi membuat setiap penambahan saldo gagal dengan error ini
	FailAddSaldo error
	// FailReads kalau diisi membuat semua query baca gagal
	FailReads error

	Users     *UserRepo
	Mitras    *MitraRepo
	Admins    *AdminRepo
	Layanans  *LayananRepo
	Tagihans  *TagihanRepo
	TopUps    *TopUpRepo
	Chats     *ChatRepo
	Statistik *StatistikRepo
}

func New() *DB {
	db := &DB{
		users:    make(map[string]*models.User),
		mitras:   make(map[string]*models.Mitra),
		layanans: make(map[string]*models.Layanan),
		tagihans: make(map[string]*models.Tagihan),
		topups:   make(map[string]*models.TopUp),
	}
	db.Users = &UserRepo{db}
	db.Mitras = &MitraRepo{db}
	db.Admins = &AdminRepo{db}
	db.Layanans = &LayananRepo{db}
	db.Tagihans = &TagihanRepo{db}
	db.TopUps = &TopUpRepo{db}
	db.Chats = &ChatRepo{db}
	db.Statistik = &StatistikRepo{db}
	return db
}

// ---- seeding ----

func (d *DB) AddUser(u models.User) *models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	d.users[u.ID] = &u
	return &u
}

func (d *DB) AddMitra(m models.Mitra) *models.Mitra {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = models.MitraStatusPending
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	d.mitras[m.ID] = &m
	return &m
}

func (d *DB) AddLayanan(l models.Layanan) *models.Layanan {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	d.layanans[l.ID] = &l
	return &l
}

func (d *DB) AddOffering(o models.MitraLayanan) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	d.offerings = append(d.offerings, &o)
}

func (d *DB) AddTagihan(t models.Tagihan) *models.Tagihan {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = models.TagihanStatusPending
	}
	if t.OrderDate.IsZero() {
		t.OrderDate = time.Now()
	}
	d.tagihans[t.ID] = &t
	return &t
}

func (d *DB) AddTopUp(t models.TopUp) *models.TopUp {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = models.TopUpStatusPending
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	d.topups[t.ID] = &t
	return &t
}

func (d *DB) AddChat(c models.Chat) *models.Chat {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	d.chats = append(d.chats, &c)
	return &c
}

func (d *DB) AddAdmin(a models.AdminCredential) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	d.admins = append(d.admins, a)
}

// ---- inspeksi untuk assertion ----

func (d *DB) User(id string) models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.users[id]
}

func (d *DB) Mitra(id string) models.Mitra {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.mitras[id]
}

func (d *DB) TopUp(id string) models.TopUp {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.topups[id]
}

func (d *DB) Tagihan(id string) models.Tagihan {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.tagihans[id]
}

func (d *DB) AllChats() []models.Chat {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Chat, 0, len(d.chats))
	for _, c := range d.chats {
		out = append(out, *c)
	}
	return out
}

// ---- UserRepo ----

type UserRepo struct{ d *DB }

func (r *UserRepo) FindAll(context.Context) ([]models.User, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}
	out := r.d.userList()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepo) FindAllByName(context.Context) ([]models.User, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}
	out := r.d.userList()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Nama < out[j].Nama })
	return out, nil
}

func (r *UserRepo) Count(context.Context) (int64, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	return int64(len(r.d.users)), nil
}

func (r *UserRepo) AddSaldo(_ context.Context, id string, amount float64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	return r.d.addUserSaldo(id, amount)
}

func (d *DB) addUserSaldo(id string, amount float64) error {
	if d.FailAddSaldo != nil {
		return d.FailAddSaldo
	}
	u, ok := d.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Saldo += amount
	return nil
}

func (d *DB) userList() []models.User {
	out := make([]models.User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, *u)
	}
	// urutan map acak; urutkan by id dulu biar stabil
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---- AdminRepo ----

type AdminRepo struct{ d *DB }

func (r *AdminRepo) FindAll(context.Context) ([]models.AdminCredential, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	out := append([]models.AdminCredential(nil), r.d.admins...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ---- MitraRepo ----

type MitraRepo struct{ d *DB }

func (r *MitraRepo) FindAll(_ context.Context, status string) ([]models.Mitra, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}
	out := make([]models.Mitra, 0, len(r.d.mitras))
	for _, m := range r.d.mitras {
		if status == "" || m.Status == status {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MitraRepo) FindVerifiedByName(ctx context.Context) ([]models.Mitra, error) {
	out, err := r.FindAll(ctx, models.MitraStatusVerified)
	sort.SliceStable(out, func(i, j int) bool { return out[i].NamaToko < out[j].NamaToko })
	return out, err
}

func (r *MitraRepo) FindByID(_ context.Context, id string) (*models.Mitra, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	m, ok := r.d.mitras[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MitraRepo) Count(_ context.Context, status string) (int64, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var n int64
	for _, m := range r.d.mitras {
		if status == "" || m.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *MitraRepo) UpdateStatus(_ context.Context, id, from, to string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	m, ok := r.d.mitras[id]
	if !ok || m.Status != from {
		return repository.ErrInvalidTransition
	}
	m.Status = to
	return nil
}

func (r *MitraRepo) AddSaldo(_ context.Context, id string, amount float64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailAddSaldo != nil {
		return r.d.FailAddSaldo
	}
	m, ok := r.d.mitras[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.Saldo += amount
	return nil
}

func (r *MitraRepo) FindOfferings(_ context.Context, mitraID string) ([]models.MitraLayanan, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var out []models.MitraLayanan
	for _, o := range r.d.offerings {
		if o.MitraID == mitraID {
			cp := *o
			if l, ok := r.d.layanans[o.LayananID]; ok {
				lc := *l
				cp.Layanan = &lc
			}
			out = append(out, cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MitraRepo) SetOfferingAvailability(_ context.Context, mitraID, layananID string, available bool) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, o := range r.d.offerings {
		if o.MitraID == mitraID && o.LayananID == layananID {
			o.IsAvailable = available
			return nil
		}
	}
	return repository.ErrNotFound
}

// ---- LayananRepo ----

type LayananRepo struct{ d *DB }

func (r *LayananRepo) FindAll(context.Context) ([]models.Layanan, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}
	out := make([]models.Layanan, 0, len(r.d.layanans))
	for _, l := range r.d.layanans {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LayananRepo) Create(_ context.Context, l *models.Layanan) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()
	cp := *l
	r.d.layanans[l.ID] = &cp
	return nil
}

func (r *LayananRepo) Update(_ context.Context, l *models.Layanan) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	cur, ok := r.d.layanans[l.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.NamaLayanan, cur.Description, cur.BasePrice, cur.IconURL = l.NamaLayanan, l.Description, l.BasePrice, l.IconURL
	return nil
}

// Delete menolak layanan yang masih direferensikan tagihan, seperti foreign key
func (r *LayananRepo) Delete(_ context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.layanans[id]; !ok {
		return repository.ErrNotFound
	}
	for _, t := range r.d.tagihans {
		if t.LayananID == id {
			return repository.ErrConflict
		}
	}
	delete(r.d.layanans, id)
	return nil
}

// ---- TagihanRepo ----

type TagihanRepo struct{ d *DB }

func (r *TagihanRepo) FindAll(_ context.Context, status string) ([]models.Tagihan, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}
	out := make([]models.Tagihan, 0, len(r.d.tagihans))
	for _, t := range r.d.tagihans {
		if status != "" && t.Status != status {
			continue
		}
		cp := *t
		if u, ok := r.d.users[t.UserID]; ok {
			cp.User = &models.User{ID: u.ID, Nama: u.Nama, Email: u.Email}
		}
		if m, ok := r.d.mitras[t.MitraID]; ok {
			cp.Mitra = &models.Mitra{ID: m.ID, NamaToko: m.NamaToko}
		}
		if l, ok := r.d.layanans[t.LayananID]; ok {
			cp.Layanan = &models.Layanan{ID: l.ID, NamaLayanan: l.NamaLayanan}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

func (r *TagihanRepo) FindByID(_ context.Context, id string) (*models.Tagihan, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t, ok := r.d.tagihans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TagihanRepo) UpdateStatus(_ context.Context, id, from, to string, completionDate *time.Time) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t, ok := r.d.tagihans[id]
	if !ok || t.Status != from {
		return repository.ErrInvalidTransition
	}
	t.Status = to
	if completionDate != nil {
		cd := *completionDate
		t.CompletionDate = &cd
	}
	return nil
}

// ---- TopUpRepo ----

type TopUpRepo struct{ d *DB }

func (r *TopUpRepo) FindAll(_ context.Context, status string) ([]models.TopUp, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}
	out := make([]models.TopUp, 0, len(r.d.topups))
	for _, t := range r.d.topups {
		if status != "" && t.Status != status {
			continue
		}
		cp := *t
		if u, ok := r.d.users[t.UserID]; ok {
			cp.User = &models.User{ID: u.ID, Nama: u.Nama, Email: u.Email}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *TopUpRepo) FindByID(_ context.Context, id string) (*models.TopUp, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t, ok := r.d.topups[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// Approve meniru transaksi database: status & saldo berubah bersama atau tidak sama sekali
func (r *TopUpRepo) Approve(_ context.Context, id string) (*models.TopUp, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t, ok := r.d.topups[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	switch t.Status {
	case models.TopUpStatusApproved:
		cp := *t
		return &cp, repository.ErrAlreadyProcessed
	case models.TopUpStatusPending:
	default:
		cp := *t
		return &cp, repository.ErrInvalidTransition
	}

	if err := r.d.addUserSaldo(t.UserID, t.Nominal); err != nil {
		cp := *t
		return &cp, err
	}
	t.Status = models.TopUpStatusApproved
	cp := *t
	return &cp, nil
}

func (r *TopUpRepo) Reject(_ context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	t, ok := r.d.topups[id]
	if !ok {
		return repository.ErrNotFound
	}
	if t.Status != models.TopUpStatusPending {
		return repository.ErrInvalidTransition
	}
	t.Status = models.TopUpStatusRejected
	return nil
}

// ---- ChatRepo ----

type ChatRepo struct{ d *DB }

func (r *ChatRepo) FindRooms(_ context.Context, senderType string) ([]models.ChatRoom, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}
	rooms := map[string]*models.ChatRoom{}
	for _, c := range r.d.chats {
		if c.ReceiverType != models.PartyAdmin || c.SenderType != senderType {
			continue
		}
		name, email, ok := r.d.party(c.SenderID, senderType)
		if !ok {
			continue // sama seperti INNER JOIN
		}
		room, exists := rooms[c.SenderID]
		if !exists {
			room = &models.ChatRoom{ID: c.SenderID, Name: name, Email: email, Type: senderType}
			rooms[c.SenderID] = room
		}
		if c.CreatedAt.After(room.LastMessageAt) {
			room.LastMessageAt = c.CreatedAt
		}
		if !c.ReadByReceiver {
			room.UnreadCount++
		}
	}
	out := make([]models.ChatRoom, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, *room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.After(out[j].LastMessageAt) })
	return out, nil
}

func (d *DB) party(id, partyType string) (string, string, bool) {
	switch partyType {
	case models.PartyUser:
		if u, ok := d.users[id]; ok {
			return u.Nama, u.Email, true
		}
	case models.PartyMitra:
		if m, ok := d.mitras[id]; ok {
			return m.NamaToko, m.Email, true
		}
	}
	return "", "", false
}

func (r *ChatRepo) FindConversation(_ context.Context, peerID, peerType string) ([]models.Chat, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var out []models.Chat
	for _, c := range r.d.chats {
		fromPeer := c.SenderID == peerID && c.SenderType == peerType && c.ReceiverType == models.PartyAdmin
		toPeer := c.ReceiverID == peerID && c.ReceiverType == peerType && c.SenderType == models.PartyAdmin
		if fromPeer || toPeer {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ChatRepo) MarkRead(_ context.Context, peerID, peerType string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, c := range r.d.chats {
		if c.SenderID == peerID && c.SenderType == peerType && c.ReceiverType == models.PartyAdmin {
			c.ReadByReceiver = true
		}
	}
	return nil
}

func (r *ChatRepo) Create(_ context.Context, c *models.Chat) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	// created_at dibuat strictly naik biar urutan percakapan deterministik
	c.CreatedAt = time.Now()
	if n := len(r.d.chats); n > 0 && !c.CreatedAt.After(r.d.chats[n-1].CreatedAt) {
		c.CreatedAt = r.d.chats[n-1].CreatedAt.Add(time.Millisecond)
	}
	cp := *c
	r.d.chats = append(r.d.chats, &cp)
	return nil
}

// ---- StatistikRepo ----

type StatistikRepo struct{ d *DB }

func (r *StatistikRepo) Aggregate(_ context.Context, since time.Time) (*models.Statistics, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.d.FailReads != nil {
		return nil, r.d.FailReads
	}

	s := &models.Statistics{
		TotalUsers:  int64(len(r.d.users)),
		TotalMitras: int64(len(r.d.mitras)),
	}
	for _, u := range r.d.users {
		if !u.CreatedAt.Before(since) {
			s.MonthlyGrowth.Users++
		}
	}

	var approved int64
	for _, t := range r.d.topups {
		switch t.Status {
		case models.TopUpStatusApproved:
			approved++
		case models.TopUpStatusPending:
			s.PendingTopups++
		}
	}

	var ratingSum float64
	var ratingCount int
	for _, t := range r.d.tagihans {
		if strings.EqualFold(t.Status, models.TagihanStatusCompleted) {
			s.CompletedServices++
			s.TotalRevenue += t.Nominal
			if !t.OrderDate.Before(since) {
				s.MonthlyGrowth.Revenue += t.Nominal
			}
		}
		if t.Rating != nil {
			ratingSum += *t.Rating
			ratingCount++
		}
	}
	s.TotalTransactions = approved + s.CompletedServices
	if ratingCount > 0 {
		s.AverageRating = repository.RoundRating(ratingSum / float64(ratingCount))
	}
	return s, nil
}
