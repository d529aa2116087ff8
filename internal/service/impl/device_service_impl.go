package impl

import (
	"context"

	"orgadmin/internal/domain"
	"orgadmin/internal/dto"
	"orgadmin/internal/form"
	"orgadmin/internal/service"
	"orgadmin/internal/store"

	"github.com/google/uuid"
)

var _ service.DeviceService = (*DeviceServiceImpl)(nil)

type DeviceServiceImpl struct {
	store  *store.Store
	codes  service.CodeGenerator
	photos service.PhotoStore
}

func NewDeviceService(st *store.Store, codes service.CodeGenerator, photos service.PhotoStore) *DeviceServiceImpl {
	return &DeviceServiceImpl{store: st, codes: codes, photos: photos}
}

// deviceSchema declares the device submission in the order required-field
// violations are reported.
var deviceSchema = form.Schema{
	{Name: "serialNumber", Kind: form.String, Required: true},
	{Name: "typeId", Kind: form.String, Required: true},
	{Name: "featureId", Kind: form.String, Required: true},
	{Name: "productionDate", Kind: form.Date, Required: true},
	{Name: "lastControlDate", Kind: form.Date, Required: true},
	{Name: "expirationDate", Kind: form.Date, Required: true},
	{Name: "nextControlDate", Kind: form.Date, Required: true},
	{Name: "location", Kind: form.String, Required: true},
	{Name: "currentStatus", Kind: form.Enum, Required: true, Values: domain.DeviceStatusValues()},
	{Name: "ownerId", Kind: form.String, Required: true},
	{Name: "ownerInstId", Kind: form.String, Required: true},
	{Name: "providerId", Kind: form.String, Required: true},
	{Name: "providerInstId", Kind: form.String, Required: true},
	{Name: "isgMemberId", Kind: form.String, Required: true},
	{Name: "details", Kind: form.String, Required: true},
	{Name: "photo", Kind: form.FileField},
}

func (s *DeviceServiceImpl) Create(ctx context.Context, sub *form.Submission) (*dto.DeviceResponse, error) {
	rec, err := form.Decode(sub, deviceSchema)
	if err != nil {
		return nil, err
	}

	refs := map[string]uuid.UUID{}
	for _, field := range []string{"typeId", "featureId", "ownerId", "ownerInstId", "providerId", "providerInstId", "isgMemberId"} {
		id, err := parseID(rec, field)
		if err != nil {
			return nil, err
		}
		refs[field] = id
	}

	// Side effects run only after every validation has passed, so a
	// rejected submission never leaves an orphaned blob behind.
	code, err := s.codes.Generate(rec.String("serialNumber"))
	if err != nil {
		return nil, &domain.DerivedValueError{Err: err}
	}

	var photo *string
	if f := rec.File("photo"); f != nil {
		url, err := s.photos.Upload(ctx, f.Filename, f.Data)
		if err != nil {
			return nil, &domain.UploadError{Err: err}
		}
		photo = &url
	}

	dev := &domain.Device{
		SerialNumber:    rec.String("serialNumber"),
		QRCode:          code,
		ProductionDate:  rec.Date("productionDate"),
		LastControlDate: rec.Date("lastControlDate"),
		ExpirationDate:  rec.Date("expirationDate"),
		NextControlDate: rec.Date("nextControlDate"),
		Location:        rec.String("location"),
		Photo:           photo,
		CurrentStatus:   domain.DeviceStatus(rec.String("currentStatus")),
		TypeID:          refs["typeId"],
		FeatureID:       refs["featureId"],
		OwnerID:         refs["ownerId"],
		OwnerInstID:     refs["ownerInstId"],
		ProviderID:      refs["providerId"],
		ProviderInstID:  refs["providerInstId"],
		IsgMemberID:     refs["isgMemberId"],
		Details:         rec.String("details"),
	}

	err = s.store.WithTx(ctx, func(tx *store.Store) error {
		return tx.Devices().Create(ctx, dev)
	})
	if err != nil {
		if store.IsDuplicate(err) {
			return nil, &domain.ConstraintViolationError{
				Message: "A device with this serial number already exists",
			}
		}
		return nil, err
	}

	resp := dto.NewDeviceResponse(dev)
	return &resp, nil
}

func (s *DeviceServiceImpl) List(ctx context.Context) ([]dto.DeviceResponse, error) {
	devices, err := s.store.Devices().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeviceResponse, 0, len(devices))
	for i := range devices {
		out = append(out, dto.NewDeviceResponse(&devices[i]))
	}
	return out, nil
}

// parseID reads a reference field as a UUID; malformed identifiers are a
// client fault naming the field.
func parseID(rec *form.Record, field string) (uuid.UUID, error) {
	v := rec.String(field)
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, &domain.InvalidFormatError{Field: field, Value: v}
	}
	return id, nil
}
