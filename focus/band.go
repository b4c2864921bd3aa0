package focus

import "github.com/rushteam/gemkit/core"

// Band 是 (标签集, 规则) 的有序分类结果。
type Band string

const (
	// BandOn 强匹配：硬门槛通过、无 ban 命中、至少一个 boost 命中。
	BandOn Band = "on"
	// BandNear 合格但无区分信号，或合格但命中已知失配风险（ban）。
	BandNear Band = "near"
	// BandDiscovery 硬门槛未过但命中 boost：值得顺手看看的弱信号。
	BandDiscovery Band = "discovery"
	// BandOff 既不合格也无任何正向信号。
	BandOff Band = "off"
)

// Result 是一次分类的完整结论：档位加可解释的命中/缺失清单。
// 消费端（UI/日志）凭这些清单即可解释档位，无需重跑分类器。
type Result struct {
	Focus string `json:"focus"`
	Band  Band   `json:"band"`

	MatchedMust    []string `json:"matched_must,omitempty"`
	MissingMust    []string `json:"missing_must,omitempty"`
	MatchedMustAny []string `json:"matched_must_any,omitempty"`
	MatchedBoost   []string `json:"matched_boost,omitempty"`
	MatchedBan     []string `json:"matched_ban,omitempty"`
}

// Classify 对照 rule 给事实标签集合定档。
//
// 判定顺序是承载语义的，不可调换：
//  1. 硬门槛：must 未全中，或 mustAny 非空且一个未中 → 门槛失败；
//     此时若有 boost 命中返回 discovery，否则 off。
//  2. 门槛通过且命中 ban → near。
//  3. 门槛通过、无 ban、有 boost → on。
//  4. 门槛通过、无 ban、无 boost → near。
//
// must 与 mustAny 均为空的规则对所有条目门槛恒通过，
// 区分度完全来自 boost/ban——这正是“任意/兜底”焦点的预期形态。
func Classify(factTags []string, rule *Rule) *Result {
	res := &Result{Band: BandOff}
	if rule == nil {
		return res
	}
	res.Focus = rule.Name

	set := core.FactTagSet(core.NormalizeFactTags(factTags))

	for _, t := range rule.Must {
		if _, ok := set[t]; ok {
			res.MatchedMust = append(res.MatchedMust, t)
		} else {
			res.MissingMust = append(res.MissingMust, t)
		}
	}
	for _, t := range rule.MustAny {
		if _, ok := set[t]; ok {
			res.MatchedMustAny = append(res.MatchedMustAny, t)
		}
	}
	for _, t := range rule.Boost {
		if _, ok := set[t]; ok {
			res.MatchedBoost = append(res.MatchedBoost, t)
		}
	}
	for _, t := range rule.Ban {
		if _, ok := set[t]; ok {
			res.MatchedBan = append(res.MatchedBan, t)
		}
	}

	gatePassed := len(res.MissingMust) == 0 &&
		(len(rule.MustAny) == 0 || len(res.MatchedMustAny) > 0)

	switch {
	case !gatePassed:
		if len(res.MatchedBoost) > 0 {
			res.Band = BandDiscovery
		} else {
			res.Band = BandOff
		}
	case len(res.MatchedBan) > 0:
		res.Band = BandNear
	case len(res.MatchedBoost) > 0:
		res.Band = BandOn
	default:
		res.Band = BandNear
	}
	return res
}
