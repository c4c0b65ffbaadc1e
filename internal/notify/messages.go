package notify

import (
	"fmt"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

type template struct {
	speechZH string
	speechEN string
	toastZH  string
	toastEN  string
}

var templates = map[model.Mode]template{
	model.ModeWork: {
		speechZH: "主人，%s提醒您，专注结束啦，喝杯水休息一下吧。",
		speechEN: "Master, %s reminds you that focus session is finished. Time for a break.",
		toastZH:  "专注结束啦，休息一下吧",
		toastEN:  "Focus session completed!",
	},
	model.ModeShortBreak: {
		speechZH: "主人，%s提醒您，短休结束啦，进入下一次专注吧。",
		speechEN: "Master, %s reminds you that short break is over. Let's get back to work.",
		toastZH:  "短休结束啦，开始专注吧",
		toastEN:  "Short break ended!",
	},
	model.ModeLongBreak: {
		speechZH: "主人，%s提醒您，长休结束啦，辛苦啦。",
		speechEN: "Master, %s reminds you that long break is over. You've done great.",
		toastZH:  "长休结束啦，精力充沛！",
		toastEN:  "Long break ended!",
	},
}

// ComposeSpeech builds the spoken announcement for a finished mode,
// addressing the assistant by its configured role and name.
func ComposeSpeech(finished model.Mode, lang model.Language, name, role string) string {
	tpl := templates[finished]
	if lang == model.LanguageZH {
		identity := fmt.Sprintf("您个%s%s", role, name)
		return fmt.Sprintf(tpl.speechZH, identity)
	}
	identity := fmt.Sprintf("your %s %s", role, name)
	return fmt.Sprintf(tpl.speechEN, identity)
}

// ComposeToast builds the visible notice text for a finished mode.
func ComposeToast(finished model.Mode, lang model.Language) string {
	tpl := templates[finished]
	if lang == model.LanguageZH {
		return tpl.toastZH
	}
	return tpl.toastEN
}
