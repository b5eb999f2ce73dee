package transport

import (
	"pvc/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareRequestData_FormEncoding(t *testing.T) {
	body := PrepareRequestData([]models.Pair{
		{Key: "a", Value: "b c"},
		{Key: "ids", Value: "1,2"},
	})
	assert.Equal(t, "a=b+c&ids=1%2C2", body)
}

func TestPrepareRequestData_KeepsOrder(t *testing.T) {
	body := PrepareRequestData([]models.Pair{
		{Key: "action", Value: "pvc-check-post"},
		{Key: "pvc_nonce", Value: "abc"},
		{Key: "id", Value: "42"},
		{Key: "storage_type", Value: "cookies"},
		{Key: "storage_data", Value: ""},
	})
	assert.Equal(t, "action=pvc-check-post&pvc_nonce=abc&id=42&storage_type=cookies&storage_data=", body)
}

func TestPrepareRequestData_Empty(t *testing.T) {
	assert.Equal(t, "", PrepareRequestData(nil))
}

func TestPrepareRequestData_LiteralPlusIsEscaped(t *testing.T) {
	assert.Equal(t, "q=1%2B1+%3D+2", PrepareRequestData([]models.Pair{{Key: "q", Value: "1+1 = 2"}}))
}

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"abcXYZ019", "abcXYZ019"},
		{"-_.!~*'()", "-_.!~*'()"},
		{" ", "%20"},
		{"a&b=c", "a%26b%3Dc"},
		{"/?#[]@", "%2F%3F%23%5B%5D%40"},
		{"pvc_visits[0]", "pvc_visits%5B0%5D"},
		{"é", "%C3%A9"},
		{"€", "%E2%82%AC"},
		{"%", "%25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, EncodeURIComponent(tt.in), tt.in)
	}
}
