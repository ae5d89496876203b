package i18n

// Strings is the full set of interface strings for one language. It is
// JSON-tagged so the frontend can fetch the whole table as a DTO.
type Strings struct {
	// Navigation
	NavMain     string `json:"navMain"`
	NavSettings string `json:"navSettings"`
	NavHelp     string `json:"navHelp"`

	// Main view
	CurrentStyle       string `json:"currentStyle"`
	WelcomeTitle       string `json:"welcomeTitle"`
	WelcomeMsg         string `json:"welcomeMsg"`
	WelcomeInstruction string `json:"welcomeInstruction"`
	GoToSettings       string `json:"goToSettings"`
	StylePreset        string `json:"stylePreset"`
	SelectPreset       string `json:"selectPreset"`
	InputText          string `json:"inputText"`
	Paste              string `json:"paste"`
	Clear              string `json:"clear"`
	Processing         string `json:"processing"`
	CheckGrammar       string `json:"checkGrammar"`
	EnhanceText        string `json:"enhanceText"`
	Result             string `json:"result"`
	CopyResult         string `json:"copyResult"`

	// Results
	NoIssues      string `json:"noIssues"`
	FoundIssues   string `json:"foundIssues"`
	CorrectedText string `json:"correctedText"`
	EnhancedText  string `json:"enhancedText"`
	ChangesMade   string `json:"changesMade"`

	// Errors
	EnterTextCheck   string `json:"enterTextCheck"`
	EnterTextEnhance string `json:"enterTextEnhance"`
	APINotConfigured string `json:"apiNotConfigured"`
	InvalidPreset    string `json:"invalidPreset"`
	ErrorPrefix      string `json:"errorPrefix"`
	SaveFailed       string `json:"saveFailed"`

	// Settings
	APIConfig         string `json:"apiConfig"`
	EnterAPIKey       string `json:"enterApiKey"`
	APIKeyPlaceholder string `json:"apiKeyPlaceholder"`
	Save              string `json:"save"`
	GetAPIKey         string `json:"getApiKey"`
	Appearance        string `json:"appearance"`
	Theme             string `json:"theme"`
	Language          string `json:"language"`

	// Help
	ShortcutTitle       string `json:"shortcutTitle"`
	ShortcutWaylandNote string `json:"shortcutWaylandNote"`
	ShortcutConfigNote  string `json:"shortcutConfigNote"`
	ShortcutSway        string `json:"shortcutSway"`
	ShortcutHyprland    string `json:"shortcutHyprland"`
	ShortcutGnome       string `json:"shortcutGnome"`
	ShortcutKDE         string `json:"shortcutKde"`
	AddToConfig         string `json:"addToConfig"`
	CopyCmd             string `json:"copyCmd"`
	UsageGuide          string `json:"usageGuide"`
	UsageStep1          string `json:"usageStep1"`
	UsageStep2          string `json:"usageStep2"`
	UsageStep3          string `json:"usageStep3"`
	UsageStep4          string `json:"usageStep4"`
	UsageStep5          string `json:"usageStep5"`
	PresetGuide         string `json:"presetGuide"`
	PresetCasual        string `json:"presetCasual"`
	PresetBusiness      string `json:"presetBusiness"`
	PresetAcademic      string `json:"presetAcademic"`
	PresetCreative      string `json:"presetCreative"`

	// Preset display names for the picker
	PresetNameCasual   string `json:"presetNameCasual"`
	PresetNameBusiness string `json:"presetNameBusiness"`
	PresetNameAcademic string `json:"presetNameAcademic"`
	PresetNameCreative string `json:"presetNameCreative"`
}

// PresetDisplayName localizes a preset key for the picker. Unknown keys are
// echoed back so user-defined presets still show something sensible.
func (s *Strings) PresetDisplayName(key string) string {
	switch key {
	case "casual":
		return s.PresetNameCasual
	case "business":
		return s.PresetNameBusiness
	case "academic":
		return s.PresetNameAcademic
	case "creative":
		return s.PresetNameCreative
	default:
		return key
	}
}

var chinese = Strings{
	NavMain:     "主页",
	NavSettings: "设置",
	NavHelp:     "帮助",

	CurrentStyle:       "当前风格",
	WelcomeTitle:       "欢迎使用 Redline!",
	WelcomeMsg:         "开始使用前，请先配置您的 Gemini API 密钥。",
	WelcomeInstruction: "前往「设置」> 输入 API 密钥 > 保存",
	GoToSettings:       "前往设置",
	StylePreset:        "文风预设",
	SelectPreset:       "选择预设",
	InputText:          "输入文本:",
	Paste:              "[粘贴]",
	Clear:              "[清空]",
	Processing:         "处理中...",
	CheckGrammar:       "[检查语法]",
	EnhanceText:        "[润色文本]",
	Result:             "结果:",
	CopyResult:         "[复制结果]",

	NoIssues:      "[OK] 没有发现语法问题!",
	FoundIssues:   "发现 {} 个问题:",
	CorrectedText: "修正后的文本:",
	EnhancedText:  "润色后的文本:",
	ChangesMade:   "修改说明:",

	EnterTextCheck:   "请输入要检查的文本",
	EnterTextEnhance: "请输入要润色的文本",
	APINotConfigured: "API 密钥未配置，请前往设置",
	InvalidPreset:    "无效的风格预设",
	ErrorPrefix:      "错误",
	SaveFailed:       "保存配置失败",

	APIConfig:         "API 配置",
	EnterAPIKey:       "请输入您的 Gemini API 密钥:",
	APIKeyPlaceholder: "API 密钥",
	Save:              "[保存]",
	GetAPIKey:         "获取密钥: https://aistudio.google.com/apikey",
	Appearance:        "外观设置",
	Theme:             "主题",
	Language:          "语言",

	ShortcutTitle:       "快捷键设置",
	ShortcutWaylandNote: "由于 Wayland 安全限制，应用无法直接注册全局快捷键。",
	ShortcutConfigNote:  "您需要在桌面环境中手动配置快捷键:",
	ShortcutSway:        "Sway (~/.config/sway/config):",
	ShortcutHyprland:    "Hyprland (~/.config/hypr/hyprland.conf):",
	ShortcutGnome:       "GNOME: 设置 > 键盘 > 自定义快捷键",
	ShortcutKDE:         "KDE Plasma: 系统设置 > 快捷键 > 自定义快捷键",
	AddToConfig:         "添加到配置文件",
	CopyCmd:             "[复制]",
	UsageGuide:          "使用指南",
	UsageStep1:          "1. 在任意应用中选中英文文本（高亮即可）",
	UsageStep2:          "2. 按热键（如 Super+G）触发 redline -s",
	UsageStep3:          "3. 自动检查语法并显示结果",
	UsageStep4:          "4. 或使用主界面输入/粘贴文本进行检查",
	UsageStep5:          "5. 复制结果到其他地方使用",
	PresetGuide:         "文风预设说明",
	PresetCasual:        "casual（日常）: 友好随意，适合聊天、社交媒体",
	PresetBusiness:      "business（商务）: 专业礼貌，适合邮件、报告",
	PresetAcademic:      "academic（学术）: 正式严谨，适合论文、文档",
	PresetCreative:      "creative（创意）: 生动表达，适合故事、博客",

	PresetNameCasual:   "日常",
	PresetNameBusiness: "商务",
	PresetNameAcademic: "学术",
	PresetNameCreative: "创意",
}

var english = Strings{
	NavMain:     "Main",
	NavSettings: "Settings",
	NavHelp:     "Help",

	CurrentStyle:       "Current Style",
	WelcomeTitle:       "Welcome to Redline!",
	WelcomeMsg:         "To get started, configure your Gemini API key.",
	WelcomeInstruction: "Go to Settings > Enter API key > Save",
	GoToSettings:       "Go to Settings",
	StylePreset:        "Style Preset",
	SelectPreset:       "Select preset",
	InputText:          "Input Text:",
	Paste:              "[Paste]",
	Clear:              "[Clear]",
	Processing:         "Processing...",
	CheckGrammar:       "[Check Grammar]",
	EnhanceText:        "[Enhance Text]",
	Result:             "Result:",
	CopyResult:         "[Copy Result]",

	NoIssues:      "[OK] No grammar issues found!",
	FoundIssues:   "Found {} issue(s):",
	CorrectedText: "Corrected text:",
	EnhancedText:  "Enhanced text:",
	ChangesMade:   "Changes made:",

	EnterTextCheck:   "Please enter some text to check",
	EnterTextEnhance: "Please enter some text to enhance",
	APINotConfigured: "API key not configured. Go to Settings.",
	InvalidPreset:    "Invalid preset selected",
	ErrorPrefix:      "Error",
	SaveFailed:       "Failed to save config",

	APIConfig:         "API Configuration",
	EnterAPIKey:       "Enter your Gemini API key:",
	APIKeyPlaceholder: "API Key",
	Save:              "[Save]",
	GetAPIKey:         "Get your key: https://aistudio.google.com/apikey",
	Appearance:        "Appearance",
	Theme:             "Theme",
	Language:          "Language",

	ShortcutTitle:       "Keyboard Shortcuts Setup",
	ShortcutWaylandNote: "Wayland does not allow apps to register global hotkeys for security.",
	ShortcutConfigNote:  "You need to configure shortcuts in your desktop environment:",
	ShortcutSway:        "Sway (~/.config/sway/config):",
	ShortcutHyprland:    "Hyprland (~/.config/hypr/hyprland.conf):",
	ShortcutGnome:       "GNOME: Settings > Keyboard > Custom Shortcuts",
	ShortcutKDE:         "KDE Plasma: System Settings > Shortcuts > Custom Shortcuts",
	AddToConfig:         "Add to config file",
	CopyCmd:             "[Copy]",
	UsageGuide:          "Usage Guide",
	UsageStep1:          "1. Select English text in any application (just highlight)",
	UsageStep2:          "2. Press hotkey (e.g., Super+G) to trigger redline -s",
	UsageStep3:          "3. Grammar is auto-checked and results are shown",
	UsageStep4:          "4. Or use the main interface to input/paste text",
	UsageStep5:          "5. Copy the results to use elsewhere",
	PresetGuide:         "Style Presets",
	PresetCasual:        "casual: Friendly, conversational - for chat, social media",
	PresetBusiness:      "business: Professional, polite - for emails, reports",
	PresetAcademic:      "academic: Formal, rigorous - for papers, documentation",
	PresetCreative:      "creative: Expressive, vivid - for stories, blogs",

	PresetNameCasual:   "Casual",
	PresetNameBusiness: "Business",
	PresetNameAcademic: "Academic",
	PresetNameCreative: "Creative",
}
