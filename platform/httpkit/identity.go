// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated user's identity.
// This interface abstracts identity extraction from the web framework,
// allowing handlers to access user information without depending on Gin.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// Groups returns the user's assigned groups.
	Groups() []string
	// HasGroup checks if the user belongs to a specific group.
	HasGroup(group string) bool
	// HasAnyGroup checks if the user belongs to at least one of the groups.
	HasAnyGroup(groups ...string) bool
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

type identity struct {
	userID        uuid.UUID
	groups        []string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID {
	return i.userID
}

func (i *identity) Groups() []string {
	return i.groups
}

func (i *identity) HasGroup(group string) bool {
	for _, g := range i.groups {
		if g == group {
			return true
		}
	}
	return false
}

func (i *identity) HasAnyGroup(groups ...string) bool {
	for _, g := range groups {
		if i.HasGroup(g) {
			return true
		}
	}
	return false
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	groups, groupsOK := c.Get(ContextGroupsKey)

	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	var groupList []string
	if groupsOK {
		groupList, _ = groups.([]string)
	}

	return &identity{
		userID:        uid,
		groups:        groupList,
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
