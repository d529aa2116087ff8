package impl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"orgadmin/internal/domain"
	"orgadmin/internal/form"
	"orgadmin/internal/qr"
	"orgadmin/internal/service/impl"
)

func TestDeviceCreate(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	photos := &stubPhotoStore{}
	svc := impl.NewDeviceService(st, qr.New(), photos)

	resp, err := svc.Create(context.Background(), form.NewSubmission(single(deviceValues(f)), nil))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if resp.SerialNumber != "SN-0001" {
		t.Fatalf("unexpected serial %q", resp.SerialNumber)
	}
	if !strings.HasPrefix(resp.QRCode, "data:image/png;base64,") {
		t.Fatalf("qr code should be a png data url, got %q", resp.QRCode[:24])
	}
	if !resp.ProductionDate.Equal(mustDate(t, "2023-05-01")) {
		t.Fatalf("production date not preserved: %v", resp.ProductionDate)
	}
	if resp.Photo != nil {
		t.Fatal("no photo submitted, response should carry nil")
	}
	if photos.calls != 0 {
		t.Fatal("upload must not run without a photo")
	}

	// The response carries the expanded reference graph.
	if resp.Type == nil || resp.Type.Name != f.deviceType.Name {
		t.Fatalf("type not expanded: %+v", resp.Type)
	}
	if resp.Owner == nil || resp.Owner.UserName != f.owner.UserName {
		t.Fatalf("owner not expanded: %+v", resp.Owner)
	}
	if resp.OwnerIns == nil || resp.OwnerIns.Name != f.institution.Name {
		t.Fatalf("owner institution not expanded: %+v", resp.OwnerIns)
	}
	if resp.IsgMember == nil || resp.IsgMember.IsgNumber != f.isgMember.IsgNumber {
		t.Fatalf("isg member not expanded: %+v", resp.IsgMember)
	}

	devices, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(devices) != 1 || devices[0].ID != resp.ID {
		t.Fatalf("expected the created device in the list, got %d rows", len(devices))
	}
}

func TestDeviceCreateWithPhoto(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	photos := &stubPhotoStore{url: "http://blobs.local/devices/p.png"}
	svc := impl.NewDeviceService(st, qr.New(), photos)

	files := map[string]*form.File{
		"photo": {Filename: "p.png", Size: 3, Data: []byte{1, 2, 3}},
	}
	resp, err := svc.Create(context.Background(), form.NewSubmission(single(deviceValues(f)), files))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if photos.calls != 1 {
		t.Fatalf("expected one upload, got %d", photos.calls)
	}
	if resp.Photo == nil || *resp.Photo != photos.url {
		t.Fatalf("response should carry the stored url, got %v", resp.Photo)
	}
}

func TestDeviceCreateMissingField(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	svc := impl.NewDeviceService(st, qr.New(), &stubPhotoStore{})

	vals := deviceValues(f)
	delete(vals, "location")

	_, err := svc.Create(context.Background(), form.NewSubmission(single(vals), nil))
	var missing *domain.MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "location" {
		t.Fatalf("expected missing location, got %v", err)
	}
	if err.Error() != "Missing required field: location" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	devices, _ := st.Devices().List(context.Background())
	if len(devices) != 0 {
		t.Fatal("rejected submission must not persist")
	}
}

func TestDeviceCreateRejectsBeforeSideEffects(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	photos := &stubPhotoStore{}
	svc := impl.NewDeviceService(st, qr.New(), photos)

	vals := deviceValues(f)
	vals["currentStatus"] = "Broken"
	files := map[string]*form.File{
		"photo": {Filename: "p.png", Size: 3, Data: []byte{1, 2, 3}},
	}

	_, err := svc.Create(context.Background(), form.NewSubmission(single(vals), files))
	var format *domain.InvalidFormatError
	if !errors.As(err, &format) || format.Field != "currentStatus" {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if photos.calls != 0 {
		t.Fatal("upload must not run for a rejected submission")
	}
}

func TestDeviceCreateInvalidDate(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	svc := impl.NewDeviceService(st, qr.New(), &stubPhotoStore{})

	vals := deviceValues(f)
	vals["productionDate"] = "yesterday"

	_, err := svc.Create(context.Background(), form.NewSubmission(single(vals), nil))
	if err == nil || err.Error() != "Invalid date format for productionDate" {
		t.Fatalf("expected date rejection, got %v", err)
	}
	if !domain.IsClientFault(err) {
		t.Fatal("validation failures are client faults")
	}
}

func TestDeviceCreateMalformedReference(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	svc := impl.NewDeviceService(st, qr.New(), &stubPhotoStore{})

	vals := deviceValues(f)
	vals["ownerId"] = "not-a-uuid"

	_, err := svc.Create(context.Background(), form.NewSubmission(single(vals), nil))
	var format *domain.InvalidFormatError
	if !errors.As(err, &format) || format.Field != "ownerId" {
		t.Fatalf("expected invalid ownerId, got %v", err)
	}
}

func TestDeviceCreateDuplicateSerial(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	svc := impl.NewDeviceService(st, qr.New(), &stubPhotoStore{})

	if _, err := svc.Create(context.Background(), form.NewSubmission(single(deviceValues(f)), nil)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), form.NewSubmission(single(deviceValues(f)), nil))

	var constraint *domain.ConstraintViolationError
	if !errors.As(err, &constraint) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
	if err.Error() != "A device with this serial number already exists" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	devices, _ := st.Devices().List(context.Background())
	if len(devices) != 1 {
		t.Fatalf("expected single row after duplicate, got %d", len(devices))
	}
}

func TestDeviceCreateUploadFailure(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	photos := &stubPhotoStore{err: errors.New("bucket gone")}
	svc := impl.NewDeviceService(st, qr.New(), photos)

	files := map[string]*form.File{
		"photo": {Filename: "p.png", Size: 3, Data: []byte{1, 2, 3}},
	}
	_, err := svc.Create(context.Background(), form.NewSubmission(single(deviceValues(f)), files))

	var upload *domain.UploadError
	if !errors.As(err, &upload) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Error uploading photo") {
		t.Fatalf("unexpected message %q", err.Error())
	}

	devices, _ := st.Devices().List(context.Background())
	if len(devices) != 0 {
		t.Fatal("failed upload must not persist the device")
	}
}

func TestDeviceListOrderedBySerial(t *testing.T) {
	st := newTestStore(t)
	f := seedFixtures(t, st)
	svc := impl.NewDeviceService(st, qr.New(), &stubPhotoStore{})

	for _, serial := range []string{"SN-0300", "SN-0100", "SN-0200"} {
		vals := deviceValues(f)
		vals["serialNumber"] = serial
		if _, err := svc.Create(context.Background(), form.NewSubmission(single(vals), nil)); err != nil {
			t.Fatalf("create %s: %v", serial, err)
		}
	}

	devices, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{devices[0].SerialNumber, devices[1].SerialNumber, devices[2].SerialNumber}
	want := []string{"SN-0100", "SN-0200", "SN-0300"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
