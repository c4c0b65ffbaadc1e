package assistant

import (
	"math/rand"
	"strings"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

var quotePrompts = map[model.Mode]map[model.Language]string{
	model.ModeWork: {
		model.LanguageZH: "挑选7句意境深远、关于专注、勤学、宁静致远的中国古诗词（如唐诗宋词）。要求：每句完整，不带作者名，文字优美，适合专注状态。",
		model.LanguageEN: "Provide 7 deep, focus-oriented ancient Stoic or philosophical quotes. Requirements: Short, impactful, full sentences.",
	},
	model.ModeShortBreak: {
		model.LanguageZH: "挑选7句意境悠闲、关于小憩、赏花、听雨、片刻宁静的中国古诗词。要求：每句完整，不带作者名，文字空灵，适合短休。",
		model.LanguageEN: "Provide 7 peaceful, relaxing short quotes about taking a breath and finding calm.",
	},
	model.ModeLongBreak: {
		model.LanguageZH: "挑选7句意境旷达、关于放慢节奏、回归自然、心无挂碍的中国古诗词。要求：每句完整，不带作者名，文字舒展，适合长休恢复精力。",
		model.LanguageEN: "Provide 7 profound, expansive quotes about freedom, nature, and deep rejuvenation.",
	},
}

var fallbackQuotes = map[model.Mode]map[model.Language][]string{
	model.ModeWork: {
		model.LanguageZH: {
			"万物静观皆自得，四时佳兴与人同。",
			"宁静致远，淡泊明志。",
			"博观而约取，厚积而薄发。",
			"不积跬步，无以至千里。",
			"欲穷千里目，更上一层楼。",
			"非淡泊无以明志，非宁静无以致远。",
			"学向勤中得，萤窗万卷书。",
		},
		model.LanguageEN: {
			"Concentrate every minute like a Roman.",
			"The soul becomes dyed with the color of its thoughts.",
			"Deep work is the superpower of the 21st century.",
			"Silence is a source of great strength.",
			"He who has a why to live can bear almost any how.",
			"First, have a definite, clear practical ideal.",
			"Focus is a matter of deciding what things you're not going to do.",
		},
	},
	model.ModeShortBreak: {
		model.LanguageZH: {
			"闲看庭前花开花落，漫随天外云卷云舒。",
			"偷得浮生半日闲。",
			"晚来天欲雪，能饮一杯无？",
			"采菊东篱下，悠然见南山。",
			"小楼一夜听春雨，深巷明朝卖杏花。",
			"春风得意马蹄疾，一日看尽长安花。",
			"回首向来萧瑟处，也无风雨也无晴。",
		},
		model.LanguageEN: {
			"The time to relax is when you don't have time for it.",
			"Almost everything will work again if you unplug it for a few minutes.",
			"Rest is not idleness, and to lie sometimes on the grass.",
			"Calm mind brings inner strength and self-confidence.",
			"Within you, there is a stillness and a sanctuary.",
			"Relaxation is a physical state that the mind follows.",
			"Take a deep breath. It's just a bad day, not a bad life.",
		},
	},
	model.ModeLongBreak: {
		model.LanguageZH: {
			"行到水穷处，坐看云起时。",
			"明月松间照，清泉石上流。",
			"结庐在人境，而无车马喧。",
			"莫听穿林打叶声，何妨吟啸且徐行。",
			"众里寻他千百度，蓦然回首，那人却在，灯火珊珊处。",
			"此地有崇山峻岭，茂林修竹。",
			"人生如逆旅，我亦是行人。",
		},
		model.LanguageEN: {
			"In the mountains, there are no expectations.",
			"Nature does not hurry, yet everything is accomplished.",
			"The poetry of the earth is never dead.",
			"Deep breaths are like little love notes to your body.",
			"Sometimes the most productive thing you can do is relax.",
			"Wisdom comes with winters.",
			"Your mind will answer most questions if you learn to relax and wait.",
		},
	},
}

// fallbackQuoteBatch returns the built-in pool for mode/language in
// randomized order.
func fallbackQuoteBatch(mode model.Mode, lang model.Language) []string {
	pool := fallbackQuotes[mode][lang]
	if pool == nil {
		pool = fallbackQuotes[mode][model.LanguageZH]
	}
	out := append([]string(nil), pool...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

var breakdownTemplate = map[model.Language][]string{
	model.LanguageZH: {"明确需求", "拆分模块", "搭建环境", "实现核心流程", "测试与优化"},
	model.LanguageEN: {"Clarify requirements", "Split modules", "Setup environment", "Implement core flow", "Test and refine"},
}

// localBreakdown is the no-service fallback: split the goal on language
// punctuation when that yields several real segments, otherwise hand out
// the generic template (5 steps for a concrete goal, 3 for none).
func localBreakdown(goal string, lang model.Language) []string {
	parts := delimiters(lang).Split(goal, -1)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len([]rune(p)) > 2 {
			segments = append(segments, p)
		}
	}
	if len(segments) > 1 {
		return segments
	}

	template := breakdownTemplate[lang]
	if template == nil {
		template = breakdownTemplate[model.LanguageZH]
	}
	if strings.TrimSpace(goal) != "" {
		return append([]string(nil), template[:5]...)
	}
	return append([]string(nil), template[:3]...)
}
