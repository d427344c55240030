package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var errNoIdentity = errors.New("no authenticated identity")

// authUserID reads the identity the auth middleware stored on the
// request context.
func authUserID(c *fiber.Ctx) (int64, error) {
	value, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, errNoIdentity
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errNoIdentity
	}
	return id, nil
}

func authEmail(c *fiber.Ctx) (string, error) {
	value, ok := c.Locals("email").(string)
	if !ok {
		return "", errNoIdentity
	}
	return value, nil
}
