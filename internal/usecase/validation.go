package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

func requireFields(fields map[string]string) error {
	// ordered check so the reported field is deterministic
	order := []string{"fullName", "email", "phone", "address", "city", "state", "zip", "transactionId", "name", "username", "password", "confirmPassword", "product"}
	for _, name := range order {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", domainErrors.ErrMissingField, name)
		}
	}
	return nil
}

// ValidateOrder checks the required checkout fields. The total is trusted as
// supplied and only rejected when negative; it is never recomputed from the
// cart lines.
func ValidateOrder(order *model.Order) error {
	if err := requireFields(map[string]string{
		"fullName":      order.FullName,
		"email":         order.Email,
		"phone":         order.Phone,
		"address":       order.Address,
		"city":          order.City,
		"state":         order.State,
		"zip":           order.Zip,
		"transactionId": order.TransactionID,
	}); err != nil {
		return err
	}
	if order.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount", domainErrors.ErrInvalidAmount)
	}
	return nil
}
