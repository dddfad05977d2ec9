package handlers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetUsers returns a paginated list of users
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	search := c.Query("search", "")

	users, total, err := h.store.ListUsers(offset, limit, search)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":  users,
		"page":  page,
		"limit": limit,
		"total": total,
		"pages": math.Ceil(float64(total) / float64(limit)),
	})
}

// GetUser returns one user by id
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "A valid user id is required")
	}

	user, err := h.store.GetUserByID(uint(id))
	if err != nil {
		return err
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return c.JSON(user)
}

// UpdateUser updates a user's name and/or email. A changed email drops the
// verified flag until it is confirmed again.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "A valid user id is required")
	}

	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	user, err := h.store.GetUserByID(uint(id))
	if err != nil {
		return err
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	if input.Email != "" && input.Email != user.Email {
		other, err := h.store.GetUserByEmail(input.Email)
		if err != nil {
			return err
		}
		if other != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Email already taken")
		}
		user.Email = input.Email
		user.IsEmailVerified = false
	}
	if input.Name != "" {
		user.Name = input.Name
	}

	if err := h.store.UpdateUser(user); err != nil {
		return err
	}

	return c.JSON(user)
}
