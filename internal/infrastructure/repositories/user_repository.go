package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/apponislam/vinies709-backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// profileColumns are the only columns UpdateFields may touch.
var profileColumns = map[string]struct{}{
	"first_name": {},
	"last_name":  {},
	"phone":      {},
	"location":   {},
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"size:255"`
	LastName     string `gorm:"size:255"`
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"column:password"`
	Role         string `gorm:"index;size:64"`
	Phone        string `gorm:"size:32"`
	Location     string `gorm:"size:255"`

	IsActive        bool `gorm:"index"`
	IsEmailVerified bool
	LastLogin       *time.Time

	ResetPasswordOTP         *string `gorm:"column:reset_password_otp;size:16"`
	ResetPasswordOTPExpiry   *time.Time
	ResetPasswordToken       *string `gorm:"index;size:128"`
	ResetPasswordTokenExpiry *time.Time

	EmailVerificationToken  *string `gorm:"index;size:128"`
	EmailVerificationExpiry *time.Time

	PendingEmail      *string `gorm:"size:255"`
	EmailChangeToken  *string `gorm:"index;size:128"`
	EmailChangeExpiry *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByRole implements domain.UserRepository
func (r *UserRepositoryImpl) FindByRole(ctx context.Context, role string) (*domain.User, error) {
	return r.findOne(ctx, "role = ?", role)
}

// FindByResetToken implements domain.UserRepository. The expiry filter
// is built into the query: an expired token is indistinguishable from
// an absent one.
func (r *UserRepositoryImpl) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, "reset_password_token = ? AND reset_password_token_expiry > ?", token, time.Now())
}

// FindByVerificationToken implements domain.UserRepository
func (r *UserRepositoryImpl) FindByVerificationToken(ctx context.Context, email, token string) (*domain.User, error) {
	return r.findOne(ctx, "email = ? AND email_verification_token = ? AND email_verification_expiry > ?", email, token, time.Now())
}

// FindByPendingEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPendingEmail(ctx context.Context, pendingEmail, token string) (*domain.User, error) {
	return r.findOne(ctx, "pending_email = ? AND email_change_token = ? AND email_change_expiry > ?", pendingEmail, token, time.Now())
}

// Update implements domain.UserRepository as a whole-record save.
// Concurrent saves of the same account are last-write-wins; there is
// no optimistic-concurrency guard.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		return err
	}
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// UpdateFields implements domain.UserRepository. Only profile columns
// are accepted; anything else is silently dropped before the update.
func (r *UserRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*domain.User, error) {
	allowed := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := profileColumns[k]; ok {
			allowed[k] = v
		}
	}

	if len(allowed) > 0 {
		res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(allowed)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrUserNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, args...).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Phone:        user.Phone,
		Location:     user.Location,

		IsActive:        user.IsActive,
		IsEmailVerified: user.IsEmailVerified,
		LastLogin:       user.LastLogin,

		ResetPasswordOTP:         user.ResetPasswordOTP,
		ResetPasswordOTPExpiry:   user.ResetPasswordOTPExpiry,
		ResetPasswordToken:       user.ResetPasswordToken,
		ResetPasswordTokenExpiry: user.ResetPasswordTokenExpiry,

		EmailVerificationToken:  user.EmailVerificationToken,
		EmailVerificationExpiry: user.EmailVerificationExpiry,

		PendingEmail:      user.PendingEmail,
		EmailChangeToken:  user.EmailChangeToken,
		EmailChangeExpiry: user.EmailChangeExpiry,

		CreatedAt: user.CreatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         dbUser.Role,
		Phone:        dbUser.Phone,
		Location:     dbUser.Location,

		IsActive:        dbUser.IsActive,
		IsEmailVerified: dbUser.IsEmailVerified,
		LastLogin:       dbUser.LastLogin,

		ResetPasswordOTP:         dbUser.ResetPasswordOTP,
		ResetPasswordOTPExpiry:   dbUser.ResetPasswordOTPExpiry,
		ResetPasswordToken:       dbUser.ResetPasswordToken,
		ResetPasswordTokenExpiry: dbUser.ResetPasswordTokenExpiry,

		EmailVerificationToken:  dbUser.EmailVerificationToken,
		EmailVerificationExpiry: dbUser.EmailVerificationExpiry,

		PendingEmail:      dbUser.PendingEmail,
		EmailChangeToken:  dbUser.EmailChangeToken,
		EmailChangeExpiry: dbUser.EmailChangeExpiry,

		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}
