package plugin

import "sync"

type recordingSender struct {
	name string
	mu   sync.Mutex
	msgs []string
}

func (s *recordingSender) SendMessage(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, text)
}

func (s *recordingSender) Name() string { return s.name }

func (s *recordingSender) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.msgs...)
}

type testPlugin struct {
	name       string
	apiVersion string
	desc       *Descriptor
	onEnable   func()
	onDisable  func()
	onCommand  func(Sender, string, string, []string) bool
}

func (p *testPlugin) Name() string { return p.name }

func (p *testPlugin) APIVersion() string {
	if p.apiVersion == "" {
		return APIVersion
	}
	return p.apiVersion
}

func (p *testPlugin) Descriptor() Descriptor {
	if p.desc != nil {
		return *p.desc
	}
	return Descriptor{Name: p.name, Version: "1.0", Main: "test." + p.name}
}

func (p *testPlugin) OnLoadEnable() {
	if p.onEnable != nil {
		p.onEnable()
	}
}

func (p *testPlugin) OnUnloadDisable() {
	if p.onDisable != nil {
		p.onDisable()
	}
}

func (p *testPlugin) OnCommand(s Sender, name, label string, args []string) bool {
	if p.onCommand != nil {
		return p.onCommand(s, name, label, args)
	}
	return false
}

func withCommands(name string, cmds map[string]CommandSpec) *Descriptor {
	return &Descriptor{Name: name, Version: "1.0", Main: "test." + name, Commands: cmds}
}
