package usecase_test

import (
	"context"

	"github.com/plannerx/plannerx-api/internal/domain"
	"github.com/plannerx/plannerx-api/internal/domain/entity"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type memCompanyRepo struct {
	items map[string]*entity.Company
	order []string
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{items: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	r.items[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetByDomain(_ context.Context, dom string) (*entity.Company, error) {
	for _, c := range r.items {
		if c.Domain == dom {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	// más recientes primero
	for i := len(r.order) - 1; i >= 0; i-- {
		cp := *r.items[r.order[i]]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type memUserRepo struct {
	items map[string]*entity.User
	order []string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range r.items {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.items[u.ID] = &cp
	r.order = append(r.order, u.ID)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.items[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *memUserRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for i := len(r.order) - 1; i >= 0; i-- {
		u := r.items[r.order[i]]
		if u.CompanyID != nil && *u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type memSheetRepo struct {
	items map[string]*entity.Sheet
	order []string
}

func newMemSheetRepo() *memSheetRepo {
	return &memSheetRepo{items: map[string]*entity.Sheet{}}
}

func (r *memSheetRepo) Create(_ context.Context, s *entity.Sheet) error {
	for _, e := range r.items {
		if e.CompanyID == s.CompanyID && e.SheetKey == s.SheetKey {
			return domain.ErrConflict
		}
	}
	cp := *s
	r.items[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

func (r *memSheetRepo) GetByID(_ context.Context, companyID, sheetID string) (*entity.Sheet, error) {
	s, ok := r.items[sheetID]
	if !ok || s.CompanyID != companyID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSheetRepo) GetByKey(_ context.Context, companyID, sheetKey string) (*entity.Sheet, error) {
	for _, s := range r.items {
		if s.CompanyID == companyID && s.SheetKey == sheetKey {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSheetRepo) Update(_ context.Context, s *entity.Sheet) error {
	if _, ok := r.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *memSheetRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Sheet, error) {
	var out []*entity.Sheet
	for i := len(r.order) - 1; i >= 0; i-- {
		s := r.items[r.order[i]]
		if s.CompanyID == companyID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memDimensionRepo struct {
	items map[string]*entity.Dimension
	order []string
}

func newMemDimensionRepo() *memDimensionRepo {
	return &memDimensionRepo{items: map[string]*entity.Dimension{}}
}

func (r *memDimensionRepo) Create(_ context.Context, d *entity.Dimension) error {
	for _, e := range r.items {
		if e.CompanyID == d.CompanyID && e.DimensionKey == d.DimensionKey {
			return domain.ErrConflict
		}
	}
	cp := *d
	r.items[d.ID] = &cp
	r.order = append(r.order, d.ID)
	return nil
}

func (r *memDimensionRepo) GetByID(_ context.Context, companyID, dimensionID string) (*entity.Dimension, error) {
	d, ok := r.items[dimensionID]
	if !ok || d.CompanyID != companyID {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDimensionRepo) GetByKey(_ context.Context, companyID, dimensionKey string) (*entity.Dimension, error) {
	for _, d := range r.items {
		if d.CompanyID == companyID && d.DimensionKey == dimensionKey {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memDimensionRepo) Update(_ context.Context, d *entity.Dimension) error {
	if _, ok := r.items[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *memDimensionRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Dimension, error) {
	var out []*entity.Dimension
	for i := len(r.order) - 1; i >= 0; i-- {
		d := r.items[r.order[i]]
		if d.CompanyID == companyID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memValueRepo struct {
	items map[string]*entity.DimensionValue
	order []string
}

func newMemValueRepo() *memValueRepo {
	return &memValueRepo{items: map[string]*entity.DimensionValue{}}
}

func (r *memValueRepo) Create(_ context.Context, v *entity.DimensionValue) error {
	for _, e := range r.items {
		if e.CompanyID == v.CompanyID && e.DimensionID == v.DimensionID && e.ValueKey == v.ValueKey {
			return domain.ErrConflict
		}
	}
	cp := *v
	r.items[v.ID] = &cp
	r.order = append(r.order, v.ID)
	return nil
}

func (r *memValueRepo) GetByID(_ context.Context, companyID, dimensionID, valueID string) (*entity.DimensionValue, error) {
	v, ok := r.items[valueID]
	if !ok || v.CompanyID != companyID || v.DimensionID != dimensionID {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *memValueRepo) GetByKey(_ context.Context, companyID, dimensionID, valueKey string) (*entity.DimensionValue, error) {
	for _, v := range r.items {
		if v.CompanyID == companyID && v.DimensionID == dimensionID && v.ValueKey == valueKey {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memValueRepo) Update(_ context.Context, v *entity.DimensionValue) error {
	if _, ok := r.items[v.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *memValueRepo) ListByDimension(_ context.Context, companyID, dimensionID string) ([]*entity.DimensionValue, error) {
	var out []*entity.DimensionValue
	for _, id := range r.order {
		v := r.items[id]
		if v.CompanyID == companyID && v.DimensionID == dimensionID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner pasa los mismos repos en memoria al callback. No simula
// rollback: los tests de atomicidad del import viven en el paquete importer.
type fakeTxRunner struct {
	companies *memCompanyRepo
	sheets    *memSheetRepo
}

func (f *fakeTxRunner) RunCompany(ctx context.Context, fn func(repository.CompanyRepository, repository.SheetRepository) error) error {
	return fn(f.companies, f.sheets)
}

func (f *fakeTxRunner) RunSheet(ctx context.Context, fn func(repository.SheetRepository, repository.CompanyRepository) error) error {
	return fn(f.sheets, f.companies)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios de prueba
// ──────────────────────────────────────────────────────────────────────────────

func strp(s string) *string { return &s }

func globalSysadmin() *entity.User {
	return &entity.User{ID: "u-sys", Email: "sysadmin@plannerx.com", Role: entity.RoleSysadmin, IsActive: true}
}

func tunneledSysadmin(companyID string) *entity.User {
	return &entity.User{ID: "u-sys-t", Email: "sysadmin@plannerx.com", Role: entity.RoleSysadmin, CompanyID: strp(companyID), IsActive: true}
}

func companyAdmin(companyID string) *entity.User {
	return &entity.User{ID: "u-admin", Email: "admin@acme.com", Role: entity.RoleCompanyAdmin, CompanyID: strp(companyID), IsActive: true}
}

func kamUser(companyID string) *entity.User {
	return &entity.User{ID: "u-kam", Email: "kam@acme.com", Role: entity.RoleKAM, CompanyID: strp(companyID), IsActive: true}
}
