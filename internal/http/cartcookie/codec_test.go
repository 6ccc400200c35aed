package cartcookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bebeboutique.mx/app/internal/http/cartcookie"
)

func TestEncodeDecode(t *testing.T) {
	c := cartcookie.New([]byte("test-secret"), "", false)
	id := uuid.NewString()

	got, err := c.Decode(c.Encode(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestDecodeRejectsBadValues(t *testing.T) {
	c := cartcookie.New([]byte("test-secret"), "", false)
	signed := c.Encode("cart-123")

	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "no signature", value: "cart-123"},
		{name: "empty id", value: signed[len("cart-123"):]},
		{name: "tampered id", value: "cart-999" + signed[len("cart-123"):]},
		{name: "tampered signature", value: "cart-123.AAAA"},
		{name: "extra segment", value: signed + ".x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.value)
			assert.ErrorIs(t, err, cartcookie.ErrInvalid)
		})
	}
}

func TestDecodeRejectsForeignSecret(t *testing.T) {
	a := cartcookie.New([]byte("secret-a"), "", false)
	b := cartcookie.New([]byte("secret-b"), "", false)

	_, err := b.Decode(a.Encode("cart-123"))
	assert.ErrorIs(t, err, cartcookie.ErrInvalid)
}

func ginCtx(t *testing.T, cookie *http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		ctx.Request.AddCookie(cookie)
	}
	return ctx, w
}

func TestGetCartID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := cartcookie.New([]byte("test-secret"), "", false)

	t.Run("valid cookie", func(t *testing.T) {
		ctx, _ := ginCtx(t, &http.Cookie{Name: c.CookieName, Value: c.Encode("cart-1")})
		id, ok := c.GetCartID(ctx)
		require.True(t, ok)
		assert.Equal(t, "cart-1", id)
	})

	t.Run("missing cookie", func(t *testing.T) {
		ctx, _ := ginCtx(t, nil)
		_, ok := c.GetCartID(ctx)
		assert.False(t, ok)
	})

	t.Run("tampered cookie is cleared", func(t *testing.T) {
		ctx, w := ginCtx(t, &http.Cookie{Name: c.CookieName, Value: "evil.sig"})
		_, ok := c.GetCartID(ctx)
		assert.False(t, ok)

		res := w.Result()
		require.Len(t, res.Cookies(), 1)
		cleared := res.Cookies()[0]
		assert.Equal(t, c.CookieName, cleared.Name)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	})
}

func TestEnsureCartID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := cartcookie.New([]byte("test-secret"), "", false)

	t.Run("mints and sets when absent", func(t *testing.T) {
		ctx, w := ginCtx(t, nil)
		id := c.EnsureCartID(ctx)
		require.NotEmpty(t, id)

		res := w.Result()
		require.Len(t, res.Cookies(), 1)
		got, err := c.Decode(res.Cookies()[0].Value)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("keeps the existing id", func(t *testing.T) {
		ctx, _ := ginCtx(t, &http.Cookie{Name: c.CookieName, Value: c.Encode("cart-7")})
		assert.Equal(t, "cart-7", c.EnsureCartID(ctx))
	})
}
