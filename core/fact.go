package core

// 事实标签（Fact Tag）是封闭词表内的字符串标识，描述可观察的具体玩法机制。
// 词表由上游分类器与本核心共同约定：上游只产出词表内标签，
// 本核心对词表外标签做静默剔除（VocabularyViolation 的本地恢复策略）。
// 新增标签是数据变更：在此追加常量并加入 factVocabulary 即可。
const (
	FactRealtimePreciseInput  = "realtime-precise-input"       // 需要实时精确操作
	FactPermanentBranching    = "permanent-narrative-branching" // 存在不可逆叙事分支
	FactAutomationLoop        = "automation-production-loop"    // 核心循环为自动化生产
	FactTurnBasedCombat       = "turn-based-combat"
	FactDeckBuilding          = "deck-building"
	FactRoguelikePermadeath   = "roguelike-permadeath"
	FactBaseBuilding          = "base-building"
	FactResourceManagement    = "resource-management"
	FactOpenWorldExploration  = "open-world-exploration"
	FactStoryRichChoices      = "story-rich-choices"
	FactPuzzleLogic           = "puzzle-logic"
	FactGridTactics           = "grid-tactics"
	FactCraftingSystem        = "crafting-system"
	FactSurvivalMechanics     = "survival-mechanics"
	FactCityBuilder           = "city-builder"
	FactPhysicsSandbox        = "physics-sandbox"
	FactRhythmTiming          = "rhythm-timing"
	FactStealthMechanics      = "stealth-mechanics"
	FactBulletHell            = "bullet-hell"
	FactFarmingSim            = "farming-sim"
	FactDungeonCrawl          = "dungeon-crawl"
	FactCoopFocused           = "co-op-focused"
	FactPvPCompetitive        = "pvp-competitive"
	FactIdleProgression       = "idle-progression"
	FactTimeLoopStructure     = "time-loop-structure"
	FactDetectiveDeduction    = "detective-deduction"
	FactHorrorAtmosphere      = "horror-atmosphere"
	FactSpeedrunFriendly      = "speedrun-friendly"
	FactModdableSandbox       = "moddable-sandbox"
	FactProceduralGeneration  = "procedural-generation"
)

var factVocabulary = map[string]struct{}{
	FactRealtimePreciseInput: {}, FactPermanentBranching: {}, FactAutomationLoop: {},
	FactTurnBasedCombat: {}, FactDeckBuilding: {}, FactRoguelikePermadeath: {},
	FactBaseBuilding: {}, FactResourceManagement: {}, FactOpenWorldExploration: {},
	FactStoryRichChoices: {}, FactPuzzleLogic: {}, FactGridTactics: {},
	FactCraftingSystem: {}, FactSurvivalMechanics: {}, FactCityBuilder: {},
	FactPhysicsSandbox: {}, FactRhythmTiming: {}, FactStealthMechanics: {},
	FactBulletHell: {}, FactFarmingSim: {}, FactDungeonCrawl: {},
	FactCoopFocused: {}, FactPvPCompetitive: {}, FactIdleProgression: {},
	FactTimeLoopStructure: {}, FactDetectiveDeduction: {}, FactHorrorAtmosphere: {},
	FactSpeedrunFriendly: {}, FactModdableSandbox: {}, FactProceduralGeneration: {},
}

// IsFactTag 判断 tag 是否属于封闭词表。
func IsFactTag(tag string) bool {
	_, ok := factVocabulary[tag]
	return ok
}

// FactVocabulary 返回词表全量快照（排序不保证），供规则校验与文档使用。
func FactVocabulary() []string {
	out := make([]string, 0, len(factVocabulary))
	for t := range factVocabulary {
		out = append(out, t)
	}
	return out
}

// NormalizeFactTags 将任意标签列表收敛为合法的事实标签集合：
// 词表外标签静默剔除，重复剔除，保留首次出现顺序。
func NormalizeFactTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if !IsFactTag(t) {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// FactTagSet 将事实标签列表转为集合，供交集运算使用。
func FactTagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}
