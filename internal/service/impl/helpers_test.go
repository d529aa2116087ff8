package impl_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"orgadmin/internal/domain"
	"orgadmin/internal/store"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = gdb.AutoMigrate(
		&domain.Institution{}, &domain.Role{}, &domain.User{},
		&domain.DeviceType{}, &domain.DeviceFeature{}, &domain.IsgMember{},
		&domain.Device{},
		&domain.Service{}, &domain.OfferRequest{}, &domain.RequestSub{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(gdb)
}

// fixtures is the minimal reference graph a device submission points at.
type fixtures struct {
	institution domain.Institution
	role        domain.Role
	owner       domain.User
	provider    domain.User
	deviceType  domain.DeviceType
	feature     domain.DeviceFeature
	isgMember   domain.IsgMember
}

func seedFixtures(t *testing.T, st *store.Store) fixtures {
	t.Helper()
	ctx := context.Background()

	f := fixtures{
		institution: domain.Institution{
			ID: uuid.New(), Name: "Acme Health", Address: "Main St 1",
			Email: "office@acme.example", Phone: "+90 212 000 0000",
		},
		role:       domain.Role{ID: uuid.New(), Name: "Technician"},
		deviceType: domain.DeviceType{ID: uuid.New(), Name: "Defibrillator"},
		feature:    domain.DeviceFeature{ID: uuid.New(), Name: "Portable"},
		isgMember:  domain.IsgMember{ID: uuid.New(), Name: "Deniz Kaya", IsgNumber: "ISG-17"},
	}
	for _, row := range []any{&f.institution, &f.role, &f.deviceType, &f.feature, &f.isgMember} {
		if err := st.DB.WithContext(ctx).Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	f.owner = domain.User{
		ID: uuid.New(), UserName: "owner", Email: "owner@acme.example",
		Password: "x", InstitutionID: f.institution.ID, RoleID: f.role.ID,
	}
	f.provider = domain.User{
		ID: uuid.New(), UserName: "provider", Email: "provider@acme.example",
		Password: "x", InstitutionID: f.institution.ID, RoleID: f.role.ID,
	}
	for _, row := range []any{&f.owner, &f.provider} {
		if err := st.DB.WithContext(ctx).Create(row).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return f
}

func single(kv map[string]string) map[string][]string {
	out := make(map[string][]string, len(kv))
	for k, v := range kv {
		out[k] = []string{v}
	}
	return out
}

// deviceValues is a fully valid device submission over the fixture graph.
func deviceValues(f fixtures) map[string]string {
	return map[string]string{
		"serialNumber":    "SN-0001",
		"typeId":          f.deviceType.ID.String(),
		"featureId":       f.feature.ID.String(),
		"productionDate":  "2023-05-01",
		"lastControlDate": "2024-05-01",
		"expirationDate":  "2030-05-01",
		"nextControlDate": "2025-05-01",
		"location":        "Ward B, Floor 2",
		"currentStatus":   "Active",
		"ownerId":         f.owner.ID.String(),
		"ownerInstId":     f.institution.ID.String(),
		"providerId":      f.provider.ID.String(),
		"providerInstId":  f.institution.ID.String(),
		"isgMemberId":     f.isgMember.ID.String(),
		"details":         "annual maintenance contract",
	}
}

func userValues(f fixtures) map[string]string {
	return map[string]string{
		"userName":      "akaya",
		"email":         "akaya@acme.example",
		"password":      "s3cret-pw",
		"firstName":     "Ayse",
		"lastName":      "Kaya",
		"bloodType":     "ARhP",
		"birthday":      "1991-03-12",
		"sex":           "Kadin",
		"phone":         "+90 555 000 0000",
		"institutionId": f.institution.ID.String(),
		"roleId":        f.role.ID.String(),
	}
}

type stubPhotoStore struct {
	url   string
	err   error
	calls int
}

func (s *stubPhotoStore) Upload(_ context.Context, filename string, _ []byte) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if s.url != "" {
		return s.url, nil
	}
	return "http://blobs.local/" + filename, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
