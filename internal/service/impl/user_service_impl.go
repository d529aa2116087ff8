package impl

import (
	"context"

	"orgadmin/internal/domain"
	"orgadmin/internal/dto"
	"orgadmin/internal/form"
	"orgadmin/internal/service"
	"orgadmin/internal/store"
)

var _ service.UserService = (*UserServiceImpl)(nil)

type UserServiceImpl struct {
	store     *store.Store
	passwords service.PasswordService
	photos    service.PhotoStore
}

func NewUserService(st *store.Store, passwords service.PasswordService, photos service.PhotoStore) *UserServiceImpl {
	return &UserServiceImpl{store: st, passwords: passwords, photos: photos}
}

var userSchema = form.Schema{
	{Name: "userName", Kind: form.String, Required: true},
	{Name: "email", Kind: form.Email, Required: true},
	{Name: "password", Kind: form.String, Required: true},
	{Name: "firstName", Kind: form.String},
	{Name: "lastName", Kind: form.String},
	{Name: "bloodType", Kind: form.Enum, Values: domain.BloodTypeValues()},
	{Name: "birthday", Kind: form.Date},
	{Name: "sex", Kind: form.Enum, Values: domain.SexValues()},
	{Name: "phone", Kind: form.String},
	{Name: "photo", Kind: form.FileField},
	{Name: "institutionId", Kind: form.String, Required: true},
	{Name: "roleId", Kind: form.String, Required: true},
}

func (s *UserServiceImpl) Create(ctx context.Context, sub *form.Submission) (*dto.UserResponse, error) {
	rec, err := form.Decode(sub, userSchema)
	if err != nil {
		return nil, err
	}

	institutionID, err := parseID(rec, "institutionId")
	if err != nil {
		return nil, err
	}
	roleID, err := parseID(rec, "roleId")
	if err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(rec.String("password"))
	if err != nil {
		return nil, err
	}

	var photo *string
	if f := rec.File("photo"); f != nil {
		url, err := s.photos.Upload(ctx, f.Filename, f.Data)
		if err != nil {
			return nil, &domain.UploadError{Err: err}
		}
		photo = &url
	}

	user := &domain.User{
		UserName:      rec.String("userName"),
		Email:         rec.String("email"),
		Password:      hash,
		FirstName:     rec.StringPtr("firstName"),
		LastName:      rec.StringPtr("lastName"),
		Birthday:      rec.DatePtr("birthday"),
		Phone:         rec.StringPtr("phone"),
		Photo:         photo,
		InstitutionID: institutionID,
		RoleID:        roleID,
	}
	if v := rec.String("bloodType"); v != "" {
		bt := domain.BloodType(v)
		user.BloodType = &bt
	}
	if v := rec.String("sex"); v != "" {
		sx := domain.Sex(v)
		user.Sex = &sx
	}

	err = s.store.WithTx(ctx, func(tx *store.Store) error {
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicate(err) {
			return nil, &domain.ConstraintViolationError{
				Message: "A user with this email already exists",
			}
		}
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]dto.UserSummary, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserSummary(&users[i]))
	}
	return out, nil
}
