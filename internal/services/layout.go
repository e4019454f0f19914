package services

import (
	"strconv"
	"strings"
	"time"
)

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// renderTemplate formats t with a Luxon-style template. Runs of the same
// letter form a token (yyyy, MM, dd, HH, mm, ss, SSS, ...); text inside
// single quotes is copied as is and '' is a literal quote. Anything that
// is not a known token is written literally.
func renderTemplate(template string, t time.Time) string {
	if template == ISOFormat {
		return t.Format(isoLayout)
	}

	var b strings.Builder
	runes := []rune(template)

	for i := 0; i < len(runes); {
		c := runes[i]

		if c == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						b.WriteRune('\'')
						j += 2
						continue
					}
					break
				}
				b.WriteRune(runes[j])
				j++
			}
			i = j + 1
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == c {
			n++
		}

		if s, ok := renderToken(c, n, t); ok {
			b.WriteString(s)
		} else {
			b.WriteString(string(runes[i : i+n]))
		}
		i += n
	}

	return b.String()
}

func renderToken(c rune, n int, t time.Time) (string, bool) {
	switch c {
	case 'y':
		switch n {
		case 1:
			return strconv.Itoa(t.Year()), true
		case 2:
			return pad(t.Year()%100, 2), true
		default:
			return pad(t.Year(), n), true
		}
	case 'M', 'L':
		switch n {
		case 1:
			return strconv.Itoa(int(t.Month())), true
		case 2:
			return pad(int(t.Month()), 2), true
		case 3:
			return t.Month().String()[:3], true
		case 4:
			return t.Month().String(), true
		case 5:
			return t.Month().String()[:1], true
		}
	case 'd':
		if n <= 2 {
			return pad(t.Day(), n), true
		}
	case 'o':
		if n == 3 {
			return pad(t.YearDay(), 3), true
		}
	case 'E', 'c':
		switch n {
		case 1:
			return strconv.Itoa(isoWeekday(t)), true
		case 3:
			return t.Weekday().String()[:3], true
		case 4:
			return t.Weekday().String(), true
		case 5:
			return t.Weekday().String()[:1], true
		}
	case 'H':
		if n <= 2 {
			return pad(t.Hour(), n), true
		}
	case 'h':
		if n <= 2 {
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			return pad(h, n), true
		}
	case 'm':
		if n <= 2 {
			return pad(t.Minute(), n), true
		}
	case 's':
		if n <= 2 {
			return pad(t.Second(), n), true
		}
	case 'S':
		ms := t.Nanosecond() / int(time.Millisecond)
		if n == 1 {
			return strconv.Itoa(ms), true
		}
		if n == 3 {
			return pad(ms, 3), true
		}
	case 'a':
		if n == 1 {
			if t.Hour() < 12 {
				return "AM", true
			}
			return "PM", true
		}
	case 'Z':
		switch n {
		case 1:
			return narrowOffset(t), true
		case 2:
			return t.Format("-07:00"), true
		case 3:
			return t.Format("-0700"), true
		}
	}
	return "", false
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if v < 0 {
		return "-" + pad(-v, width)
	}
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Monday is 1, Sunday is 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// +5, -3:30, +0
func narrowOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h, m := offset/3600, (offset%3600)/60
	if m == 0 {
		return sign + strconv.Itoa(h)
	}
	return sign + strconv.Itoa(h) + ":" + pad(m, 2)
}
