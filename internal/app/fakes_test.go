package app_test

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"hotel_console/internal/domain"
)

// fakeAPI is an in-memory REST resource. build turns a payload into the
// stored entity.
type fakeAPI[Req, Resp any] struct {
	mu    sync.Mutex
	data  map[int64]Resp
	next  int64
	build func(id int64, r Req) Resp

	err    error            // returned by every call when set
	status int              // overrides the success status of mutations
	gates  map[string]*gate // op name -> gate the call waits on

	listCalls int
	created   []Req
	updated   []Req
	deleted   []int64
}

func newFakeAPI[Req, Resp any](build func(int64, Req) Resp) *fakeAPI[Req, Resp] {
	return &fakeAPI[Req, Resp]{data: map[int64]Resp{}, build: build}
}

func (f *fakeAPI[Req, Resp]) seed(r Req) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	f.data[f.next] = f.build(f.next, r)
	return f.next
}

func (f *fakeAPI[Req, Resp]) List(ctx context.Context) ([]Resp, error) {
	f.wait("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int64, 0, len(f.data))
	for id := range f.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Resp, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.data[id])
	}
	return out, nil
}

func (f *fakeAPI[Req, Resp]) Get(ctx context.Context, id int64) (Resp, error) {
	f.wait("get")
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero Resp
	if f.err != nil {
		return zero, f.err
	}
	v, ok := f.data[id]
	if !ok {
		return zero, domain.ErrNotFound
	}
	return v, nil
}

// gate holds a fake call open: entered fires when the call arrives and the
// call returns once release is closed.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

// hold makes the next calls of op wait on the returned gate.
func (f *fakeAPI[Req, Resp]) hold(op string) *gate {
	g := &gate{entered: make(chan struct{}, 1), release: make(chan struct{})}
	f.mu.Lock()
	if f.gates == nil {
		f.gates = map[string]*gate{}
	}
	f.gates[op] = g
	f.mu.Unlock()
	return g
}

func (f *fakeAPI[Req, Resp]) wait(op string) {
	f.mu.Lock()
	g := f.gates[op]
	f.mu.Unlock()
	if g == nil {
		return
	}
	select {
	case g.entered <- struct{}{}:
	default:
	}
	<-g.release
}

func (f *fakeAPI[Req, Resp]) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeAPI[Req, Resp]) mutationStatus(def int) int {
	if f.status != 0 {
		return f.status
	}
	return def
}

func (f *fakeAPI[Req, Resp]) Create(ctx context.Context, r Req) (int, error) {
	f.wait("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, r)
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	f.data[f.next] = f.build(f.next, r)
	return f.mutationStatus(http.StatusCreated), nil
}

func (f *fakeAPI[Req, Resp]) Update(ctx context.Context, id int64, r Req) (int, error) {
	f.wait("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, r)
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.data[id]; !ok {
		return 0, domain.ErrNotFound
	}
	f.data[id] = f.build(id, r)
	return f.mutationStatus(http.StatusOK), nil
}

func (f *fakeAPI[Req, Resp]) Delete(ctx context.Context, id int64) (int, error) {
	f.wait("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.err != nil {
		return 0, f.err
	}
	delete(f.data, id)
	return f.mutationStatus(http.StatusOK), nil
}

func (f *fakeAPI[Req, Resp]) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func buildHotel(id int64, r domain.HotelRequest) domain.Hotel {
	h := domain.Hotel{
		ID: id, Name: r.Name, LegalName: r.LegalName, Country: r.Country, City: r.City,
		Address: r.Address, Phone: r.Phone, Email: r.Email, Status: domain.StatusInactive,
	}
	if r.IsOrderable != nil && *r.IsOrderable {
		h.IsOrderable = true
		h.Status = domain.StatusActive
	}
	return h
}

func buildUser(id int64, r domain.UserRequest) domain.User {
	return domain.User{
		ID: id, Username: r.Username, Name: r.Name, Email: r.Email,
		AccountStatus: r.AccountStatus, HotelID: r.HotelID, HotelName: "Hotel " + r.Name,
	}
}

func newHotelAPI() *fakeAPI[domain.HotelRequest, domain.Hotel] { return newFakeAPI(buildHotel) }

func newUserAPI() *fakeAPI[domain.UserRequest, domain.User] { return newFakeAPI(buildUser) }

type notice struct {
	ok  bool
	msg string
}

type fakeNotifier struct {
	mu   sync.Mutex
	msgs []notice
}

func (n *fakeNotifier) Success(msg string) { n.add(true, msg) }
func (n *fakeNotifier) Error(msg string)   { n.add(false, msg) }

func (n *fakeNotifier) add(ok bool, msg string) {
	n.mu.Lock()
	n.msgs = append(n.msgs, notice{ok, msg})
	n.mu.Unlock()
}

func (n *fakeNotifier) last() notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.msgs) == 0 {
		return notice{}
	}
	return n.msgs[len(n.msgs)-1]
}

type fakeNav struct {
	mu    sync.Mutex
	paths []string
}

func (n *fakeNav) Navigate(p string) {
	n.mu.Lock()
	n.paths = append(n.paths, p)
	n.mu.Unlock()
}

func (n *fakeNav) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.paths)
}

type memKV struct {
	mu      sync.Mutex
	m       map[string]string
	failSet map[string]error // Set of a key returns the mapped error
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(_ context.Context, name string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[name]
	return v, ok, nil
}

func (k *memKV) Set(_ context.Context, name, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.failSet[name]; err != nil {
		return err
	}
	k.m[name] = value
	return nil
}

func (k *memKV) Del(_ context.Context, names ...string) error {
	k.mu.Lock()
	for _, n := range names {
		delete(k.m, n)
	}
	k.mu.Unlock()
	return nil
}

type fakeAuth struct {
	resp  domain.LoginResponse
	err   error
	block chan struct{}
	got   []string
}

func (a *fakeAuth) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	a.got = append(a.got, email, password)
	if a.block != nil {
		<-a.block
	}
	return a.resp, a.err
}

func boolPtr(b bool) *bool { return &b }
