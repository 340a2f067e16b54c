package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the cross-field rules of the
// selected provider and transports.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: %w", err)
	}

	if err := c.Provider.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Telegram.Enabled {
		if c.Telegram.Token == "" || c.Telegram.OwnerID == 0 {
			return errors.New("config: TELEGRAM_TOKEN and TELEGRAM_OWNER_ID are required when telegram is enabled")
		}
	}
	return nil
}
