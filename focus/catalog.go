package focus

import "github.com/rushteam/gemkit/core"

// BuiltinRules 返回内置焦点规则表。
// 与 yaml 装载的规则表等价；产品侧可用 LoadRulesFromYAML 覆盖。
func BuiltinRules() RuleSet {
	rules := []*Rule{
		{
			Name:    "strategy-mastermind",
			MustAny: []string{core.FactGridTactics, core.FactTurnBasedCombat, core.FactCityBuilder},
			Boost:   []string{core.FactResourceManagement, core.FactBaseBuilding, core.FactDeckBuilding},
			Ban:     []string{core.FactRealtimePreciseInput},
		},
		{
			Name:  "narrative-immersion",
			Must:  []string{core.FactStoryRichChoices},
			Boost: []string{core.FactPermanentBranching, core.FactDetectiveDeduction, core.FactTimeLoopStructure},
			Ban:   []string{core.FactPvPCompetitive},
		},
		{
			Name:    "zen-automation",
			MustAny: []string{core.FactAutomationLoop, core.FactIdleProgression, core.FactFarmingSim},
			Boost:   []string{core.FactCraftingSystem, core.FactCityBuilder, core.FactResourceManagement},
			Ban:     []string{core.FactBulletHell, core.FactHorrorAtmosphere},
		},
		{
			Name:  "adrenaline-reflex",
			Must:  []string{core.FactRealtimePreciseInput},
			Boost: []string{core.FactBulletHell, core.FactRhythmTiming, core.FactSpeedrunFriendly},
			Ban:   []string{core.FactTurnBasedCombat},
		},
		{
			Name:  "roguelike-grind",
			Must:  []string{core.FactRoguelikePermadeath},
			Boost: []string{core.FactProceduralGeneration, core.FactDungeonCrawl, core.FactDeckBuilding},
		},
		{
			Name:    "creative-sandbox",
			MustAny: []string{core.FactPhysicsSandbox, core.FactModdableSandbox, core.FactBaseBuilding},
			Boost:   []string{core.FactCraftingSystem, core.FactOpenWorldExploration},
		},
		{
			// 兜底焦点：无硬门槛，区分度全部来自 boost/ban。
			Name:  "anything-good",
			Boost: []string{core.FactStoryRichChoices, core.FactRoguelikePermadeath, core.FactAutomationLoop, core.FactPuzzleLogic},
			Ban:   []string{core.FactIdleProgression},
		},
	}

	rs := make(RuleSet, len(rules))
	for _, r := range rules {
		rs[r.Name] = r
	}
	return rs
}
