package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"engelsiz-ankara-backend/internal/auth"
	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
)

type AuthUseCase interface {
	// Register yeni vatandaş hesabı açar ve otomatik giriş belirteci döndürür
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)

	// LoginUser vatandaş girişi yapar
	LoginUser(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// LoginStaff belediye personeli girişi yapar
	LoginStaff(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// GetUser kullanıcı adına göre vatandaş hesabını döndürür
	GetUser(ctx context.Context, username string) (*model.User, error)

	// GetStaff kullanıcı adına göre personel hesabını döndürür
	GetStaff(ctx context.Context, username string) (*model.Staff, error)

	// AddStaff yeni belediye personeli ekler, yalnızca yönetici çağırır
	AddStaff(ctx context.Context, req *model.StaffCreateRequest, createdBy string) (*model.StaffResponse, error)

	// ListStaff tüm personel hesaplarını listeler
	ListStaff(ctx context.Context) ([]model.StaffResponse, error)
}

// authUseCaseImpl AuthUseCase'in implementasyonu
type authUseCaseImpl struct {
	userRepo  repository.UserRepository
	staffRepo repository.StaffRepository
	tokens    *auth.TokenManager
}

// NewAuthUseCase yeni AuthUseCase örneği oluşturur
func NewAuthUseCase(
	userRepo repository.UserRepository,
	staffRepo repository.StaffRepository,
	tokens *auth.TokenManager,
) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:  userRepo,
		staffRepo: staffRepo,
		tokens:    tokens,
	}
}

// usernameTaken kullanıcı adı vatandaş ya da personel tablosunda var mı
func (u *authUseCaseImpl) usernameTaken(ctx context.Context, username string) (bool, error) {
	if _, err := u.userRepo.GetByUsername(ctx, username); err == nil {
		return true, nil
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return false, err
	}
	if _, err := u.staffRepo.GetByUsername(ctx, username); err == nil {
		return true, nil
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return false, err
	}
	return false, nil
}

func (u *authUseCaseImpl) userToken(user *model.User) (*model.Token, error) {
	accessToken, err := u.tokens.Generate(model.TokenData{Username: user.Username, Role: model.RoleUser})
	if err != nil {
		return nil, err
	}
	return &model.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Role:        model.RoleUser,
		Username:    user.Username,
		FullName:    user.FullName,
	}, nil
}

func (u *authUseCaseImpl) staffToken(staff *model.Staff) (*model.Token, error) {
	staffRole := staff.StaffRole
	if staffRole == "" {
		staffRole = model.StaffRoleOperasyon
	}
	accessToken, err := u.tokens.Generate(model.TokenData{
		Username:  staff.Username,
		Role:      model.RoleStaff,
		StaffRole: staffRole,
	})
	if err != nil {
		return nil, err
	}
	fullName := staff.FullName
	return &model.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Role:        model.RoleStaff,
		StaffRole:   &staffRole,
		Username:    staff.Username,
		FullName:    &fullName,
	}, nil
}

func (u *authUseCaseImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	taken, err := u.usernameTaken(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		FullName:     req.FullName,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.userToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("👤 Yeni kullanıcı kaydı: %s (#%d)", user.Username, user.ID)

	return &model.RegisterResponse{
		Success:  true,
		Message:  "Kayıt işleminiz başarıyla tamamlandı! Hoş geldiniz.",
		UserID:   user.ID,
		Username: user.Username,
		Token:    *token,
	}, nil
}

func (u *authUseCaseImpl) LoginUser(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := u.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}

	token, err := u.userToken(user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Success: true,
		Message: "Giriş başarılı! Hoş geldiniz.",
		Token:   *token,
	}, nil
}

func (u *authUseCaseImpl) LoginStaff(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	staff, err := u.staffRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(req.Password, staff.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}

	token, err := u.staffToken(staff)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Success: true,
		Message: "Giriş başarılı! Belediye paneline yönlendiriliyorsunuz.",
		Token:   *token,
	}, nil
}

func (u *authUseCaseImpl) GetUser(ctx context.Context, username string) (*model.User, error) {
	return u.userRepo.GetByUsername(ctx, username)
}

func (u *authUseCaseImpl) GetStaff(ctx context.Context, username string) (*model.Staff, error) {
	return u.staffRepo.GetByUsername(ctx, username)
}

func (u *authUseCaseImpl) AddStaff(ctx context.Context, req *model.StaffCreateRequest, createdBy string) (*model.StaffResponse, error) {
	// rol verilmezse operasyon atanır
	staffRole := req.StaffRole
	if staffRole == "" {
		staffRole = model.StaffRoleOperasyon
	}
	if !model.IsValidStaffRole(staffRole) {
		return nil, model.ErrInvalidStaffRole
	}

	taken, err := u.usernameTaken(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	staff := &model.Staff{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Department:   req.Department,
		StaffRole:    staffRole,
		CreatedAt:    time.Now().Format(time.RFC3339),
		CreatedBy:    &createdBy,
	}
	if err := u.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	log.Printf("👤 Yeni personel eklendi: %s (rol: %s, ekleyen: %s)", staff.Username, staff.StaffRole, createdBy)

	resp := staff.ToResponse()
	return &resp, nil
}

func (u *authUseCaseImpl) ListStaff(ctx context.Context) ([]model.StaffResponse, error) {
	staff, err := u.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.StaffResponse, 0, len(staff))
	for i := range staff {
		responses = append(responses, staff[i].ToResponse())
	}
	return responses, nil
}
