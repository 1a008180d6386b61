package ghcas

import "go.uber.org/zap"

// Outcome status codes.
const (
	StatusOK     = 0
	StatusFailed = -1
)

const (
	MessageUploaded = "upload succeeded"
	MessageExists   = "already uploaded"
)

// Outcome is the normalized result of one upload attempt.
// On failure URL holds the remote's reply instead of a link.
type Outcome struct {
	Status  int
	Message string
	URL     string
	Persist bool
}

// OK reports whether the asset is available at URL.
func (o Outcome) OK() bool { return o.Status == StatusOK }

// Classify turns a contents reply into an Outcome. The reply counts as a
// success only when it carries a commit with a committer; anything else is
// a rejection reported with the serialized reply.
func (u *Uploader) Classify(resp *ContentResponse, filename string) Outcome {
	if !resp.Committed() {
		raw := resp.String()
		u.logger.Info("upload rejected", zap.String("filename", filename), zap.String("response", raw))
		return Outcome{Status: StatusFailed, Message: raw, URL: raw, Persist: false}
	}

	url := u.URL(filename)
	u.logger.Info("uploaded", zap.String("filename", filename), zap.String("url", url))
	return Outcome{Status: StatusOK, Message: MessageUploaded, URL: url, Persist: true}
}
