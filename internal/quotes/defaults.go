package quotes

import "github.com/williiamwang/FlowPomodoro/internal/model"

// DefaultPools returns the built-in seed quotes. The cache is constructed
// from these, so a pool is never empty even before the first refresh.
func DefaultPools() model.QuotePools {
	return model.QuotePools{
		model.ModeWork: entries(
			"万物静观皆自得，四时佳兴与人同。",
			"宁静致远，淡泊明志。",
			"博观而约取，厚积而薄发。",
			"不积跬步，无以至千里。",
			"欲穷千里目，更上一层楼。",
			"非淡泊无以明志，非宁静无以致远。",
			"学向勤中得，萤窗万卷书。",
		),
		model.ModeShortBreak: entries(
			"闲看庭前花开花落，漫随天外云卷云舒。",
			"偷得浮生半日闲。",
			"晚来天欲雪，能饮一杯无？",
			"采菊东篱下，悠然见南山。",
			"小楼一夜听春雨，深巷明朝卖杏花。",
			"春风得意马蹄疾，一日看尽长安花。",
			"回首向来萧瑟处，也无风雨也无晴。",
		),
		model.ModeLongBreak: entries(
			"行到水穷处，坐看云起时。",
			"明月松间照，清泉石上流。",
			"结庐在人境，而无车马喧。",
			"莫听穿林打叶声，何妨吟啸且徐行。",
			"众里寻他千百度，蓦然回首，那人却在，灯火珊珊处。",
			"此地有崇山岭，茂林修竹。",
			"人生如逆旅，我亦是行人。",
		),
	}
}

func entries(texts ...string) []model.QuoteEntry {
	out := make([]model.QuoteEntry, len(texts))
	for i, text := range texts {
		out[i] = model.QuoteEntry{Text: text}
	}
	return out
}
