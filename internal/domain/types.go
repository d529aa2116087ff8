package domain

import "github.com/google/uuid"

type UserID = uuid.UUID
type DeviceID = uuid.UUID
type InstitutionID = uuid.UUID
type OfferRequestID = uuid.UUID

// DeviceStatus is the closed set of legal device states.
type DeviceStatus string

const (
	DeviceStatusActive           DeviceStatus = "Active"
	DeviceStatusInactive         DeviceStatus = "Inactive"
	DeviceStatusUnderMaintenance DeviceStatus = "UnderMaintenance"
	DeviceStatusOutOfService     DeviceStatus = "OutOfService"
)

func DeviceStatusValues() []string {
	return []string{
		string(DeviceStatusActive),
		string(DeviceStatusInactive),
		string(DeviceStatusUnderMaintenance),
		string(DeviceStatusOutOfService),
	}
}

// BloodType covers the eight Rh-qualified groups as submitted by the
// dashboard forms (P = positive, N = negative).
type BloodType string

const (
	BloodTypeARhP  BloodType = "ARhP"
	BloodTypeARhN  BloodType = "ARhN"
	BloodTypeBRhP  BloodType = "BRhP"
	BloodTypeBRhN  BloodType = "BRhN"
	BloodTypeABRhP BloodType = "ABRhP"
	BloodTypeABRhN BloodType = "ABRhN"
	BloodTypeORhP  BloodType = "ORhP"
	BloodTypeORhN  BloodType = "ORhN"
)

func BloodTypeValues() []string {
	return []string{
		string(BloodTypeARhP), string(BloodTypeARhN),
		string(BloodTypeBRhP), string(BloodTypeBRhN),
		string(BloodTypeABRhP), string(BloodTypeABRhN),
		string(BloodTypeORhP), string(BloodTypeORhN),
	}
}

type Sex string

const (
	SexErkek Sex = "Erkek"
	SexKadin Sex = "Kadin"
	SexDiger Sex = "Diger"
)

func SexValues() []string {
	return []string{string(SexErkek), string(SexKadin), string(SexDiger)}
}
