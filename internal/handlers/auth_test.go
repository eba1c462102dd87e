package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline_reservation/internal/menu"
	"airline_reservation/internal/models"
	"airline_reservation/internal/repository"
)

func TestRegisterThenLogin(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)

	term, out := scriptedConsole("Amina", "29", "amina@x.com", "pass1234", "0300-1234567")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	require.NoError(t, auth.Register(false))
	assert.Contains(t, out.String(), "registered successfully")
	assert.True(t, session.Anonymous(), "registration must not establish a session")

	term, out = scriptedConsole("amina@x.com", "pass1234")
	auth = NewAuth(users, term, session)
	require.NoError(t, auth.Login(false))

	assert.False(t, session.Anonymous())
	assert.Equal(t, models.RolePassenger, session.Role)
	assert.Equal(t, "amina@x.com", session.Email)
	assert.Contains(t, out.String(), "logged in successfully")
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)
	seedUser(t, db, "amina@x.com", false)

	term, out := scriptedConsole("amina@x.com", "wrong-pass")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	require.NoError(t, auth.Login(false))
	assert.True(t, session.Anonymous())
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)

	term, out := scriptedConsole("nobody@x.com", "pass1234")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	require.NoError(t, auth.Login(false))
	assert.True(t, session.Anonymous())
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestLogin_EmptyCredentialsFailClosed(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)

	term, out := scriptedConsole("", "")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	require.NoError(t, auth.Login(false))
	assert.True(t, session.Anonymous())
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestAdminLogin_RequiresAdminFlag(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)
	seedUser(t, db, "amina@x.com", false)

	term, out := scriptedConsole("amina@x.com", "pass1234")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	require.NoError(t, auth.Login(true))
	assert.True(t, session.Anonymous())
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestAdminLogin_Success(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)
	seedUser(t, db, "root@x.com", true)

	term, _ := scriptedConsole("root@x.com", "pass1234")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	require.NoError(t, auth.Login(true))
	assert.Equal(t, models.RoleAdmin, session.Role)
}

func TestRegister_DuplicateEmailLeavesUsersUnchanged(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)
	seedUser(t, db, "amina@x.com", false)

	before := userCount(t, db)

	term, out := scriptedConsole("Other", "40", "amina@x.com", "pass1234", "0300-1234567")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	require.NoError(t, auth.Register(false))
	assert.Contains(t, out.String(), "email already in use")
	assert.Equal(t, before, userCount(t, db))
	assert.True(t, session.Anonymous())
}

func TestRegister_ValidationFailureAbortsAction(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)

	// age is not a positive integer, the action aborts before any write
	term, _ := scriptedConsole("Amina", "not-a-number", "amina@x.com", "pass1234", "0300-1234567")
	session := &menu.Session{}
	auth := NewAuth(users, term, session)

	err := auth.Register(false)
	require.Error(t, err)
	assert.Zero(t, userCount(t, db))
}

func TestRegister_AdminRoleFlag(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)

	term, _ := scriptedConsole("Root", "35", "root@x.com", "pass1234", "0300-1234567")
	auth := NewAuth(users, term, &menu.Session{})
	require.NoError(t, auth.Register(true))

	admin, err := users.FindAdminByEmail("root@x.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}
