package credentials

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// SalonClaim имя claim'а, в котором удаленный API передает идентификатор салона
const SalonClaim = "salon_id"

// Claims данные, извлеченные из payload токена
type Claims struct {
	SalonID   string
	Subject   string
	ExpiresAt *time.Time
}

// Decode декодирует payload (base64url JSON) без проверки подписи.
// Подпись проверяет только удаленный API, поэтому полученным claims
// нельзя доверять для авторизации внутри дашборда.
func Decode(token string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, ErrEmptyToken
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims := &Claims{
		SalonID: claimString(mapClaims[SalonClaim]),
	}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		claims.ExpiresAt = &t
	}

	return claims, nil
}

// NewSession собирает серверную сессию из токена и профиля пользователя
func NewSession(id, token, mobile, name string, now time.Time) (*domain.Session, error) {
	claims, err := Decode(token)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		ID:        id,
		Token:     token,
		SalonID:   claims.SalonID,
		Mobile:    mobile,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// claimString приводит значение claim'а к строке (API отдает id и числом, и строкой)
func claimString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	default:
		return ""
	}
}
