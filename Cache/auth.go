package Cache

import (
	"context"
	"time"
)

const (
	maxLoginAttempts = 5
	loginWindow      = 5 * time.Minute

	attemptKeyPrefix = "login_attempts:"
	revokedKeyPrefix = "revoked_token:"
)

// IsRateLimited reports whether an email has exhausted its failed-login
// budget inside the current window.
func IsRateLimited(email string) bool {
	if Client == nil {
		return false
	}
	count, err := Client.Get(context.Background(), attemptKeyPrefix+email).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// RecordFailedAttempt counts a failed login. The first failure opens the
// window, later ones only increment inside it.
func RecordFailedAttempt(email string) {
	if Client == nil {
		return
	}
	key := attemptKeyPrefix + email
	count, err := Client.Incr(context.Background(), key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		Client.Expire(context.Background(), key, loginWindow)
	}
}

// ClearAttempts resets the failed-login window after a successful login.
func ClearAttempts(email string) {
	if Client == nil {
		return
	}
	Client.Del(context.Background(), attemptKeyPrefix+email)
}

// RevokeToken puts a token on the denylist until it would have expired on
// its own anyway.
func RevokeToken(token string, remaining time.Duration) error {
	if Client == nil || token == "" || remaining <= 0 {
		return nil
	}
	return SetRedis(revokedKeyPrefix+token, "1", remaining)
}

func IsTokenRevoked(token string) bool {
	if Client == nil || token == "" {
		return false
	}
	_, err := GetRedis(revokedKeyPrefix + token)
	return err == nil
}
