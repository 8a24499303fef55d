package model

// User vatandaş hesabı
type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"password_hash"`
	Email        *string `json:"email"`
	FullName     *string `json:"full_name"`
	CreatedAt    string  `json:"created_at"`
}

// Staff belediye personeli hesabı
type Staff struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"password_hash"`
	FullName     string  `json:"full_name"`
	Department   *string `json:"department"`
	StaffRole    string  `json:"staff_role"`
	CreatedAt    string  `json:"created_at"`
	CreatedBy    *string `json:"created_by"`
}

// StaffResponse parola özeti olmadan personel bilgisi
type StaffResponse struct {
	ID         int     `json:"id"`
	Username   string  `json:"username"`
	FullName   string  `json:"full_name"`
	Department *string `json:"department"`
	StaffRole  string  `json:"staff_role"`
	CreatedAt  string  `json:"created_at"`
	CreatedBy  *string `json:"created_by"`
}

// ToResponse parola özetini dışarıda bırakarak yanıt tipine çevirir
func (s *Staff) ToResponse() StaffResponse {
	role := s.StaffRole
	if role == "" {
		role = StaffRoleOperasyon
	}
	return StaffResponse{
		ID:         s.ID,
		Username:   s.Username,
		FullName:   s.FullName,
		Department: s.Department,
		StaffRole:  role,
		CreatedAt:  s.CreatedAt,
		CreatedBy:  s.CreatedBy,
	}
}

// TokenData erişim belirteci içinde taşınan kimlik bilgisi
type TokenData struct {
	Username  string
	Role      string // "user" veya "staff"
	StaffRole string // personel alt rolü, vatandaşta boş
}

// Token giriş yanıtında dönen erişim belirteci
type Token struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	Role        string  `json:"role"`
	StaffRole   *string `json:"staff_role"`
	Username    string  `json:"username"`
	FullName    *string `json:"full_name"`
}

// RegisterRequest vatandaş kayıt isteği, e-posta ve ad soyad isteğe bağlı
type RegisterRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
}

// LoginRequest giriş isteği, hem vatandaş hem personel için
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StaffCreateRequest yönetici tarafından personel ekleme isteği
type StaffCreateRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	Department *string `json:"department"`
	StaffRole  string  `json:"staff_role"`
}

// RegisterResponse kayıt yanıtı, otomatik giriş belirteci ile döner
type RegisterResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Token    Token  `json:"token"`
}

// LoginResponse giriş yanıtı
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   Token  `json:"token"`
}
