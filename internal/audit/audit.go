package audit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"
)

type Logger struct {
	Enabled bool
	Secret  []byte
}

func New(enabled bool, secret string) *Logger {
	return &Logger{
		Enabled: enabled,
		Secret:  []byte(secret),
	}
}

func (l *Logger) Sign(payload []byte) string {
	m := hmac.New(sha256.New, l.Secret)
	m.Write(payload)
	return hex.EncodeToString(m.Sum(nil))
}

// Write emits one signed JSON event line to stdout. The signature covers
// the event without the sig field itself.
func (l *Logger) Write(event map[string]any) {
	if !l.Enabled {
		return
	}
	if _, ok := event["ts"]; !ok {
		event["ts"] = time.Now().Unix()
	}
	tmp := make(map[string]any, len(event))
	for k, v := range event {
		if k == "sig" {
			continue
		}
		tmp[k] = v
	}
	b, _ := json.Marshal(tmp)
	sig := l.Sign(b)

	tmp["sig"] = sig
	out, _ := json.Marshal(tmp)
	_, _ = os.Stdout.Write(append(out, '\n'))
}
