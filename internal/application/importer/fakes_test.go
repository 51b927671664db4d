package importer_test

import (
	"context"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria con soporte de snapshot para simular rollback
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	companies map[string]*entity.Company
	sheets    map[string]*entity.Sheet
	dims      map[string]*entity.Dimension
	vals      map[string]*entity.DimensionValue
	calendar  map[string][]*entity.CalendarDay // por companyID
}

func newMemStore() *memStore {
	return &memStore{
		companies: map[string]*entity.Company{},
		sheets:    map[string]*entity.Sheet{},
		dims:      map[string]*entity.Dimension{},
		vals:      map[string]*entity.DimensionValue{},
		calendar:  map[string][]*entity.CalendarDay{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.companies {
		cp := *v
		c.companies[k] = &cp
	}
	for k, v := range s.sheets {
		cp := *v
		c.sheets[k] = &cp
	}
	for k, v := range s.dims {
		cp := *v
		c.dims[k] = &cp
	}
	for k, v := range s.vals {
		cp := *v
		c.vals[k] = &cp
	}
	for k, rows := range s.calendar {
		c.calendar[k] = append([]*entity.CalendarDay(nil), rows...)
	}
	return c
}

type storeCompanyRepo struct{ s *memStore }

func (r storeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r storeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r storeCompanyRepo) GetByDomain(_ context.Context, dom string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.Domain == dom {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r storeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.s.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r storeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	return nil, nil
}

type storeSheetRepo struct{ s *memStore }

func (r storeSheetRepo) Create(_ context.Context, sh *entity.Sheet) error {
	cp := *sh
	r.s.sheets[sh.ID] = &cp
	return nil
}

func (r storeSheetRepo) GetByID(_ context.Context, companyID, sheetID string) (*entity.Sheet, error) {
	sh, ok := r.s.sheets[sheetID]
	if !ok || sh.CompanyID != companyID {
		return nil, nil
	}
	cp := *sh
	return &cp, nil
}

func (r storeSheetRepo) GetByKey(_ context.Context, companyID, sheetKey string) (*entity.Sheet, error) {
	for _, sh := range r.s.sheets {
		if sh.CompanyID == companyID && sh.SheetKey == sheetKey {
			cp := *sh
			return &cp, nil
		}
	}
	return nil, nil
}

func (r storeSheetRepo) Update(_ context.Context, sh *entity.Sheet) error {
	cp := *sh
	r.s.sheets[sh.ID] = &cp
	return nil
}

func (r storeSheetRepo) ListByCompany(_ context.Context, _ string) ([]*entity.Sheet, error) {
	return nil, nil
}

type storeDimensionRepo struct{ s *memStore }

func (r storeDimensionRepo) Create(_ context.Context, d *entity.Dimension) error {
	cp := *d
	r.s.dims[d.ID] = &cp
	return nil
}

func (r storeDimensionRepo) GetByID(_ context.Context, companyID, id string) (*entity.Dimension, error) {
	d, ok := r.s.dims[id]
	if !ok || d.CompanyID != companyID {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r storeDimensionRepo) GetByKey(_ context.Context, companyID, key string) (*entity.Dimension, error) {
	for _, d := range r.s.dims {
		if d.CompanyID == companyID && d.DimensionKey == key {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r storeDimensionRepo) Update(_ context.Context, d *entity.Dimension) error {
	cp := *d
	r.s.dims[d.ID] = &cp
	return nil
}

func (r storeDimensionRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Dimension, error) {
	var out []*entity.Dimension
	for _, d := range r.s.dims {
		if d.CompanyID == companyID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

type storeValueRepo struct{ s *memStore }

func (r storeValueRepo) Create(_ context.Context, v *entity.DimensionValue) error {
	cp := *v
	r.s.vals[v.ID] = &cp
	return nil
}

func (r storeValueRepo) GetByID(_ context.Context, companyID, dimensionID, id string) (*entity.DimensionValue, error) {
	v, ok := r.s.vals[id]
	if !ok || v.CompanyID != companyID || v.DimensionID != dimensionID {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r storeValueRepo) GetByKey(_ context.Context, companyID, dimensionID, key string) (*entity.DimensionValue, error) {
	for _, v := range r.s.vals {
		if v.CompanyID == companyID && v.DimensionID == dimensionID && v.ValueKey == key {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r storeValueRepo) Update(_ context.Context, v *entity.DimensionValue) error {
	cp := *v
	r.s.vals[v.ID] = &cp
	return nil
}

func (r storeValueRepo) ListByDimension(_ context.Context, companyID, dimensionID string) ([]*entity.DimensionValue, error) {
	var out []*entity.DimensionValue
	for _, v := range r.s.vals {
		if v.CompanyID == companyID && v.DimensionID == dimensionID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

type storeCalendarRepo struct{ s *memStore }

func (r storeCalendarRepo) DeleteByCompany(_ context.Context, companyID string) error {
	delete(r.s.calendar, companyID)
	return nil
}

func (r storeCalendarRepo) BulkInsert(_ context.Context, rows []*entity.CalendarDay) error {
	for _, d := range rows {
		cp := *d
		r.s.calendar[d.CompanyID] = append(r.s.calendar[d.CompanyID], &cp)
	}
	return nil
}

func (r storeCalendarRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.CalendarDay, error) {
	return append([]*entity.CalendarDay(nil), r.s.calendar[companyID]...), nil
}

// fakeCalendarTx simula la semántica transaccional real: el callback trabaja
// sobre una copia del estado y solo si termina sin error la copia se vuelve el
// estado visible.
type fakeCalendarTx struct {
	store *memStore
}

func (f *fakeCalendarTx) RunCalendar(ctx context.Context, fn func(
	calendar repository.CalendarRepository,
	sheets repository.SheetRepository,
	companies repository.CompanyRepository,
) error) error {
	work := f.store.clone()
	if err := fn(storeCalendarRepo{work}, storeSheetRepo{work}, storeCompanyRepo{work}); err != nil {
		return err // rollback: el estado visible no cambió
	}
	*f.store = *work
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios de prueba
// ──────────────────────────────────────────────────────────────────────────────

func strp(s string) *string { return &s }

func globalSysadmin() *entity.User {
	return &entity.User{ID: "u-sys", Email: "sysadmin@plannerx.com", Role: entity.RoleSysadmin, IsActive: true}
}

func companyAdmin(companyID string) *entity.User {
	return &entity.User{ID: "u-admin", Email: "admin@acme.com", Role: entity.RoleCompanyAdmin, CompanyID: strp(companyID), IsActive: true}
}

func kamUser(companyID string) *entity.User {
	return &entity.User{ID: "u-kam", Email: "kam@acme.com", Role: entity.RoleKAM, CompanyID: strp(companyID), IsActive: true}
}
