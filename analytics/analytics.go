// Package analytics provides privacy-first visit tracking for serve mode.
// IP addresses are never stored; visitors are identified by a salted hash
// that cannot be reversed into an address.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// salt holds the per-installation random salt for hashing, protected by sync.Once.
var salt struct {
	once  sync.Once
	value string
}

// InitSalt loads or generates a persistent salt for visitor hashing.
// Must be called once at startup before any visits are recorded.
func InitSalt(store *Store) error {
	var initErr error
	salt.once.Do(func() {
		s, err := store.GetSetting("hash_salt")
		if err != nil {
			initErr = fmt.Errorf("read hash salt: %w", err)
			return
		}
		if s == "" {
			b := make([]byte, 32)
			if _, err := rand.Read(b); err != nil {
				initErr = fmt.Errorf("generate salt: %w", err)
				return
			}
			s = hex.EncodeToString(b)
			if err := store.SetSetting("hash_salt", s); err != nil {
				initErr = fmt.Errorf("store hash salt: %w", err)
				return
			}
		}
		salt.value = s
	})
	return initErr
}

func getSalt() string {
	return salt.value
}

// Visit represents a single page or download view.
type Visit struct {
	ID        int64     `json:"-"`
	VisitorID string    `json:"visitor_id"` // Anonymous fingerprint hash
	IPHash    string    `json:"-"`
	Browser   string    `json:"browser"`
	Device    string    `json:"device"` // desktop, mobile, tablet
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer"`
	Bot       bool      `json:"bot"`
	Timestamp time.Time `json:"timestamp"`
}

// NewVisit builds a Visit from request data, hashing the IP immediately.
func NewVisit(ip, userAgent, path, referrer string) Visit {
	browser, device := ParseUserAgent(userAgent)
	return Visit{
		VisitorID: GenerateVisitorID(ip, userAgent),
		IPHash:    HashIP(ip),
		Browser:   browser,
		Device:    device,
		Path:      path,
		Referrer:  CleanReferrer(referrer),
		Bot:       IsBot(userAgent),
		Timestamp: time.Now().UTC(),
	}
}

// Stats holds aggregated analytics data.
type Stats struct {
	Period         string      `json:"period"`
	UniqueVisitors int         `json:"unique_visitors"`
	TotalViews     int         `json:"total_views"`
	BotViews       int         `json:"bot_views"`
	TopPages       []PageStat  `json:"top_pages"`
	DailyViews     []DailyView `json:"daily_views"`
}

// PageStat represents per-path view counts.
type PageStat struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// DailyView represents views per day.
type DailyView struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// HashIP creates a salted SHA-256 hash of an IP address.
func HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(getSalt() + ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// GenerateVisitorID creates a salted visitor ID from IP and User-Agent.
func GenerateVisitorID(ip, userAgent string) string {
	h := sha256.New()
	h.Write([]byte(getSalt() + ip + "|" + userAgent))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// ParseUserAgent extracts browser and device class from a User-Agent string.
func ParseUserAgent(ua string) (browser, device string) {
	ua = strings.ToLower(ua)

	// Order matters: more specific patterns before generic ones.
	switch {
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// iPad UAs contain "mobile", so tablet comes first.
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}

	return
}

// IsBot checks if the User-Agent is likely a bot/crawler.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	bots := []string{
		"bot", "crawler", "spider", "crawl", "slurp", "scrape",
		"facebookexternalhit", "yandex", "baidu",
	}
	for _, bot := range bots {
		if strings.Contains(ua, bot) {
			return true
		}
	}
	return false
}

var referrerDomainRegex = regexp.MustCompile(`^https?://(?:www\.)?([^/]+)`)

// CleanReferrer extracts the domain from a referrer URL.
func CleanReferrer(ref string) string {
	if ref == "" {
		return "Direct"
	}
	if m := referrerDomainRegex.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ref
}
