package ghcas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	up := newTestUploader(t, "tok", &fakeRemote{})

	t.Run("committed", func(t *testing.T) {
		out := up.Classify(committedResponse(), "2.txt")
		assert.True(t, out.OK())
		assert.Equal(t, StatusOK, out.Status)
		assert.Equal(t, MessageUploaded, out.Message)
		assert.Equal(t, "https://cdn.jsdelivr.net/gh/engigu/resources@images/img/2.txt", out.URL)
		assert.True(t, out.Persist)
	})

	t.Run("rejected", func(t *testing.T) {
		raw := `{"message":"Invalid request.","documentation_url":"https://docs.github.com/rest"}`
		resp := &ContentResponse{Message: "Invalid request.", Raw: []byte(raw)}

		out := up.Classify(resp, "2.txt")
		assert.False(t, out.OK())
		assert.Equal(t, StatusFailed, out.Status)
		assert.Equal(t, raw, out.Message)
		assert.Equal(t, raw, out.URL)
		assert.False(t, out.Persist)
	})

	t.Run("nil response", func(t *testing.T) {
		out := up.Classify(nil, "2.txt")
		assert.Equal(t, StatusFailed, out.Status)
		assert.Equal(t, "null", out.Message)
		assert.False(t, out.Persist)
	})

	t.Run("commit without committer", func(t *testing.T) {
		resp := committedResponse()
		resp.Commit.Committer = nil

		out := up.Classify(resp, "2.txt")
		assert.Equal(t, StatusFailed, out.Status)
		assert.False(t, out.Persist)
	})
}

func TestClassifyDirectMode(t *testing.T) {
	up := newTestUploader(t, "tok", &fakeRemote{}, WithCDN(false))

	out := up.Classify(committedResponse(), "2.txt")
	assert.Equal(t, "https://raw.githubusercontent.com/EngiGu/resources/images/img/2.txt", out.URL)
}
