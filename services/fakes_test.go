package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/repository"
	"hotelbooking/services/notification"

	"github.com/goccy/go-json"
)

type fakeUsers struct {
	mu     sync.Mutex
	byID   map[uint]*models.User
	nextID uint
	err    error
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{byID: map[uint]*models.User{}}
	for _, u := range users {
		f.nextID++
		if u.ID == 0 {
			u.ID = f.nextID
		}
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, f.err
}

func (f *fakeUsers) Count(context.Context) (int64, error) {
	return int64(len(f.byID)), f.err
}

type fakeHotels struct {
	byID   map[uint]*models.Hotel
	nextID uint
	calls  int
	err    error
}

func newFakeHotels(hotels ...*models.Hotel) *fakeHotels {
	f := &fakeHotels{byID: map[uint]*models.Hotel{}}
	for _, h := range hotels {
		f.nextID++
		if h.ID == 0 {
			h.ID = f.nextID
		}
		f.byID[h.ID] = h
	}
	return f
}

func (f *fakeHotels) sorted() []models.Hotel {
	out := make([]models.Hotel, 0, len(f.byID))
	for _, h := range f.byID {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeHotels) Create(_ context.Context, hotel *models.Hotel) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	hotel.ID = f.nextID
	f.byID[hotel.ID] = hotel
	return nil
}

func (f *fakeHotels) GetByID(_ context.Context, id uint) (*models.Hotel, error) {
	if f.err != nil {
		return nil, f.err
	}
	if h, ok := f.byID[id]; ok {
		return h, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeHotels) GetDetail(ctx context.Context, id uint, reviewLimit int) (*models.Hotel, []int, error) {
	f.calls++
	h, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	ratings := make([]int, 0, len(h.Reviews))
	for _, r := range h.Reviews {
		ratings = append(ratings, r.Rating)
	}
	detail := *h
	if len(detail.Reviews) > reviewLimit {
		detail.Reviews = detail.Reviews[:reviewLimit]
	}
	return &detail, ratings, nil
}

func (f *fakeHotels) Search(_ context.Context, text string, stars *int) ([]models.Hotel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Hotel
	for _, h := range f.sorted() {
		if text != "" && !strings.Contains(h.City, text) && !strings.Contains(h.Country, text) && !strings.Contains(h.Name, text) {
			continue
		}
		if stars != nil && h.Stars != *stars {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHotels) Featured(_ context.Context, limit int) ([]models.Hotel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := f.sorted()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stars > out[j].Stars })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeHotels) Recent(_ context.Context, limit int) ([]models.Hotel, error) {
	out := f.sorted()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, f.err
}

func (f *fakeHotels) ListWithRelations(context.Context) ([]models.Hotel, error) {
	return f.sorted(), f.err
}

func (f *fakeHotels) Count(context.Context) (int64, error) {
	return int64(len(f.byID)), f.err
}

type fakeRooms struct {
	byID   map[uint]*models.Room
	nextID uint
	err    error
}

func newFakeRooms(rooms ...*models.Room) *fakeRooms {
	f := &fakeRooms{byID: map[uint]*models.Room{}, nextID: 100}
	for _, r := range rooms {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRooms) GetByID(_ context.Context, id uint) (*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRooms) Create(_ context.Context, room *models.Room) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	room.ID = f.nextID
	f.byID[room.ID] = room
	return nil
}

type fakeBookings struct {
	mu        sync.Mutex
	byID      map[uint]*models.Booking
	nextID    uint
	createErr error
	err       error
}

func newFakeBookings(bookings ...*models.Booking) *fakeBookings {
	f := &fakeBookings{byID: map[uint]*models.Booking{}}
	for _, b := range bookings {
		f.nextID++
		if b.ID == 0 {
			b.ID = f.nextID
		}
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBookings) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBookings) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if b, ok := f.byID[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

// Cancel mirrors the conditional update of the SQL store.
func (f *fakeBookings) Cancel(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	b, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	for _, s := range models.CancellableStatuses() {
		if b.Status == s {
			b.Status = constants.BookingStatusCancelled
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) HasOverlap(_ context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.byID {
		if b.RoomID == roomID && b.Status != constants.BookingStatusCancelled && checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) CompleteFinished(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.byID {
		if b.Status == constants.BookingStatusConfirmed && !b.CheckOut.After(now) {
			b.Status = constants.BookingStatusCompleted
			n++
		}
	}
	return n, f.err
}

func (f *fakeBookings) ListWithRelations(context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, f.err
}

func (f *fakeBookings) Count(context.Context) (int64, error) {
	return int64(len(f.byID)), f.err
}

type fakeReviews struct {
	created []models.Review
	exists  bool
	err     error
}

func (f *fakeReviews) Exists(_ context.Context, userID, hotelID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.exists {
		return true, nil
	}
	for _, r := range f.created {
		if r.UserID == userID && r.HotelID == hotelID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviews) Create(_ context.Context, r *models.Review) error {
	if f.err != nil {
		return f.err
	}
	r.ID = uint(len(f.created) + 1)
	r.CreatedAt = time.Now()
	f.created = append(f.created, *r)
	return nil
}

func (f *fakeReviews) Count(context.Context) (int64, error) {
	return int64(len(f.created)), f.err
}

// memCache is an in-process Cache that stores JSON like the redis one.
type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, target interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, target)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}

type recordedEvents struct {
	events []dto.BookingEvent
}

func (r *recordedEvents) Publish(_ context.Context, e dto.BookingEvent) {
	r.events = append(r.events, e)
}

type fakeMailer struct {
	configured bool
	sent       []notification.Message
	err        error
}

func (m *fakeMailer) Configured() bool { return m.configured }

func (m *fakeMailer) Send(_ context.Context, msg notification.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeUploader struct {
	n   int
	err error
}

func (u *fakeUploader) Upload(context.Context, io.Reader, string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.n++
	return fmt.Sprintf("https://img.example.com/hotels/%d.jpg", u.n), nil
}
