package portal

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

// layoutProbe has no field in common with the reference time, so any layout
// token changes the formatted output.
var layoutProbe = time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)

// customRules maps the extra tags to their checks. Every check accepts an
// empty value; presence is left to required and friends.
var customRules = map[string]validator.Func{
	"cron":       stringRule(validCron),
	"timelayout": stringRule(validTimeLayout),
	"logpattern": stringRule(validLogPattern),
}

func registerCustomValidations(v *validator.Validate) {
	if v == nil {
		return
	}

	for tag, rule := range customRules {
		if err := v.RegisterValidation(tag, rule); err != nil {
			panic("portal: failed to register " + tag + " validation: " + err.Error())
		}
	}
}

func stringRule(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		if value == "" {
			return true
		}

		return check(value)
	}
}

func validCron(expr string) bool {
	_, err := cronParser.Parse(expr)

	return err == nil
}

func validTimeLayout(layout string) bool {
	return layoutProbe.Format(layout) != layout
}

// validLogPattern wants a path with a single %s for the date.
func validLogPattern(pattern string) bool {
	return strings.Count(pattern, "%s") == 1 && strings.Count(pattern, "%") == 1
}
