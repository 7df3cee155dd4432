package core

// Layout is a layout description as written by application code.
// Exactly one of the variant fields must be set.
type Layout struct {
	Component         *ComponentLayout `json:"component,omitempty" yaml:"component,omitempty"`
	Stack             *StackLayout     `json:"stack,omitempty" yaml:"stack,omitempty"`
	BottomTabs        *TabsLayout      `json:"bottomTabs,omitempty" yaml:"bottomTabs,omitempty"`
	SideMenu          *SideMenuLayout  `json:"sideMenu,omitempty" yaml:"sideMenu,omitempty"`
	TopTabs           *TabsLayout      `json:"topTabs,omitempty" yaml:"topTabs,omitempty"`
	ExternalComponent *ComponentLayout `json:"externalComponent,omitempty" yaml:"externalComponent,omitempty"`
}

// Variants returns the names of the variant keys that are set, in a fixed order.
func (l Layout) Variants() []string {
	var keys []string
	if l.Component != nil {
		keys = append(keys, "component")
	}
	if l.Stack != nil {
		keys = append(keys, "stack")
	}
	if l.BottomTabs != nil {
		keys = append(keys, "bottomTabs")
	}
	if l.SideMenu != nil {
		keys = append(keys, "sideMenu")
	}
	if l.TopTabs != nil {
		keys = append(keys, "topTabs")
	}
	if l.ExternalComponent != nil {
		keys = append(keys, "externalComponent")
	}
	return keys
}

// ComponentLayout describes a single component (or external component).
type ComponentLayout struct {
	ID        string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string  `json:"name" yaml:"name"`
	Options   Options `json:"options,omitempty" yaml:"options,omitempty"`
	PassProps any     `json:"passProps,omitempty" yaml:"passProps,omitempty"`
}

// StackLayout describes a stack of layouts, bottom first.
type StackLayout struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Children []Layout `json:"children,omitempty" yaml:"children,omitempty"`
	Options  Options  `json:"options,omitempty" yaml:"options,omitempty"`
}

// TabsLayout describes bottom tabs or top tabs, in tab order.
type TabsLayout struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Children []Layout `json:"children,omitempty" yaml:"children,omitempty"`
	Options  Options  `json:"options,omitempty" yaml:"options,omitempty"`
}

// SideMenuLayout describes a side menu. Center is required.
type SideMenuLayout struct {
	ID      string  `json:"id,omitempty" yaml:"id,omitempty"`
	Left    *Layout `json:"left,omitempty" yaml:"left,omitempty"`
	Center  *Layout `json:"center,omitempty" yaml:"center,omitempty"`
	Right   *Layout `json:"right,omitempty" yaml:"right,omitempty"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// Root is the description passed to setRoot.
type Root struct {
	Root     *Layout  `json:"root,omitempty" yaml:"root,omitempty"`
	Modals   []Layout `json:"modals,omitempty" yaml:"modals,omitempty"`
	Overlays []Layout `json:"overlays,omitempty" yaml:"overlays,omitempty"`
}
