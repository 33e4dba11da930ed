package server

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
)

func (s *Server) handleListActivities(c echo.Context) error {
	acts, err := s.app.List(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list activities", err)
	}
	if err := c.JSON(200, acts); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSignup(c echo.Context) error {
	name := activityName(c)
	email := c.QueryParam("email")
	if email == "" {
		return apperrors.ValidationError("email is required").WithField("activity", name)
	}

	if _, err := s.app.Signup(c.Request().Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			return apperrors.NotFoundError("Activity not found").WithField("activity", name)
		case errors.Is(err, domain.ErrAlreadySignedUp):
			return apperrors.ConflictError(fmt.Sprintf("%s is already signed up for %s", email, name)).
				WithField("activity", name)
		default:
			return apperrors.InternalError("failed to sign up", err).WithField("activity", name)
		}
	}

	msg := fmt.Sprintf("Signed up %s for %s", email, name)
	if err := c.JSON(200, map[string]string{"message": msg}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUnregister(c echo.Context) error {
	name := activityName(c)
	email := c.QueryParam("email")
	if email == "" {
		return apperrors.ValidationError("email is required").WithField("activity", name)
	}

	if _, err := s.app.Unregister(c.Request().Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			return apperrors.NotFoundError("Activity not found").WithField("activity", name)
		case errors.Is(err, domain.ErrNotSignedUp):
			return apperrors.ConflictError(fmt.Sprintf("%s is not signed up for %s", email, name)).
				WithField("activity", name)
		default:
			return apperrors.InternalError("failed to unregister", err).WithField("activity", name)
		}
	}

	msg := fmt.Sprintf("Unregistered %s from %s", email, name)
	if err := c.JSON(200, map[string]string{"message": msg}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// activityName returns the :name path segment with percent-encoding undone,
// so "Chess%20Club" resolves the "Chess Club" record.
func activityName(c echo.Context) string {
	raw := c.Param("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
