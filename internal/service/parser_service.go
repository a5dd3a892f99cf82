package service

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/daehyun-dev/lineup-api/internal/models"
)

// koreanDays maps the day tokens dispatchers actually paste.
var koreanDays = map[string]string{
	"월":  "Monday",
	"화":  "Tuesday",
	"수":  "Wednesday",
	"목":  "Thursday",
	"금":  "Friday",
	"토":  "Saturday",
	"일":  "Sunday",
	"주말": "Weekend",
}

var (
	venueHeaderRe = regexp.MustCompile(`^(.+?)\s*\((.*?)\)\s*:$`)
	slotLineRe    = regexp.MustCompile(`^(\d{1,2}:\d{2})-(\d{1,2}:\d{2})\s+(.+)$`)
)

// ParserService turns pasted schedule text into the venue→slots structure.
// Parsing is best-effort: lines that match nothing are skipped, since the
// rest of the engine degrades gracefully on partial schedules.
type ParserService struct {
	logger *zap.Logger
}

// NewParserService constructs the parser.
func NewParserService(logger *zap.Logger) *ParserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParserService{logger: logger}
}

// Parse reads the schedule format:
//
//	Venue Name (Day):
//	HH:MM-HH:MM DJ Name
//
// Day labels may be Korean (월..일, 주말) or English; a bare "Day Venue:"
// header without parentheses is accepted too.
func (p *ParserService) Parse(text string) models.VenueSchedules {
	schedules := make(models.VenueSchedules)
	currentVenue := ""
	currentDay := ""

	for _, rawLine := range strings.Split(text, "\n") {
		line := stripEmoji(rawLine)
		if line == "" {
			continue
		}

		if match := venueHeaderRe.FindStringSubmatch(line); match != nil {
			currentVenue = strings.TrimSpace(match[1])
			currentDay = normalizeDay(match[2])
			continue
		}

		if match := slotLineRe.FindStringSubmatch(line); match != nil && currentVenue != "" {
			schedules[currentVenue] = append(schedules[currentVenue], models.ScheduleSlot{
				Start: match[1],
				End:   match[2],
				DJ:    titleCase(strings.TrimSpace(match[3])),
				Day:   currentDay,
			})
			continue
		}

		// Bare "Day Venue:" or "Venue:" header.
		if strings.HasSuffix(line, ":") && !strings.Contains(line, "-") {
			header := strings.TrimSpace(strings.TrimSuffix(line, ":"))
			for token, day := range koreanDays {
				if strings.HasPrefix(header, token) {
					currentDay = day
					header = strings.TrimSpace(strings.TrimPrefix(header, token))
					break
				}
			}
			if header != "" {
				currentVenue = header
			}
			continue
		}

		p.logger.Debug("skipping unparseable schedule line", zap.String("line", line))
	}

	return schedules
}

// normalizeDay translates Korean day names and capitalizes English ones.
func normalizeDay(raw string) string {
	day := strings.TrimSpace(raw)
	if day == "" {
		return ""
	}
	for token, english := range koreanDays {
		if strings.HasPrefix(day, token) {
			return english
		}
	}
	return titleCase(strings.ToLower(day))
}

// titleCase uppercases the first letter of each word, matching how DJ names
// are normalized so "big ma" and "Big Ma" collapse to one roster entry.
func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// stripEmoji drops pictographic runes pasted from chat apps and trims the line.
func stripEmoji(line string) string {
	var b strings.Builder
	for _, r := range line {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F6FF: // pictographs, transport
		return true
	case r >= 0x1F900 && r <= 0x1FAFF: // supplemental pictographs
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	}
	return false
}
