// Package focus 实现体验焦点（experience focus）档位分类：
// 把条目的事实标签集合对照命名规则的 must/mustAny/boost/ban 语义，
// 收敛为 on/near/discovery/off 四档粗粒度标签。
// 档位本身没有数值，不参与打分，只做预筛与解释。
package focus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/gemkit/core"
)

// Rule 是一条静态、版本化、不可变的体验焦点规则。
// 进程启动时装载一次，之后只读。
type Rule struct {
	Name string `yaml:"name" json:"name"`

	// Must 全部标签都必须命中。
	Must []string `yaml:"must" json:"must"`

	// MustAny 非空时至少命中其一。
	MustAny []string `yaml:"must_any" json:"must_any"`

	// Boost 命中提升置信，但不是必要条件。
	Boost []string `yaml:"boost" json:"boost"`

	// Ban 命中降档，但在 must/mustAny 满足时不取消资格。
	Ban []string `yaml:"ban" json:"ban"`
}

// Validate 校验规则中的标签都在封闭词表内。
// 规则是静态配置，词表外标签属于配置错误，直接报错而非静默剔除。
func (r *Rule) Validate() error {
	if r.Name == "" {
		return core.NewDomainError(core.ModuleFocus, core.ErrorCodeInvalidInput, "focus: rule name is empty")
	}
	for _, group := range [][]string{r.Must, r.MustAny, r.Boost, r.Ban} {
		for _, tag := range group {
			if !core.IsFactTag(tag) {
				return core.NewDomainError(core.ModuleFocus, core.ErrorCodeInvalidInput,
					fmt.Sprintf("focus: rule %q references unknown fact tag %q", r.Name, tag))
			}
		}
	}
	return nil
}

// RuleSet 是以名字为键的只读规则表。
type RuleSet map[string]*Rule

// Get 按名字取规则。
func (rs RuleSet) Get(name string) (*Rule, bool) {
	r, ok := rs[name]
	return r, ok
}

// ruleFile 是 yaml 规则文件的外层结构。
type ruleFile struct {
	Focuses []*Rule `yaml:"focuses"`
}

// LoadRulesFromYAML 从 yaml 文件装载规则表并逐条校验。
// 新增焦点是数据变更，不需要改分类器代码。
func LoadRulesFromYAML(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	rs := make(RuleSet, len(f.Focuses))
	for _, r := range f.Focuses {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := rs[r.Name]; dup {
			return nil, core.NewDomainError(core.ModuleFocus, core.ErrorCodeInvalidInput,
				fmt.Sprintf("focus: duplicate rule name %q", r.Name))
		}
		rs[r.Name] = r
	}
	return rs, nil
}
