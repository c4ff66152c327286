// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rules holds the built-in zh-CN replacement table for the
// main-process script and loads replacement tables from files.
package rules

import "github.com/walteh/i18npatch/pkg/text"

// ChineseMenu returns the built-in table for the application menu and its
// dialogs. A fresh slice is returned on every call.
//
// The last four rules add labels to menus that are otherwise named by their
// role. The fileMenu rule's To wraps its From, which the localizer handles
// idempotently.
func ChineseMenu() []text.ReplacementRule {
	return []text.ReplacementRule{
		{From: `label:"Settings…"`, To: `label:"设置…"`},
		{From: `label:"New Thread"`, To: `label:"新对话"`},
		{From: `label:"Open Folder…"`, To: `label:"打开文件夹…"`},
		{From: `label:"Log Out"`, To: `label:"退出登录"`},
		{From: `label:"Command Menu…"`, To: `label:"命令菜单…"`},
		{From: `label:"Increase Font Size"`, To: `label:"增大字体"`},
		{From: `label:"Decrease Font Size"`, To: `label:"减小字体"`},
		{From: "label:`About ${F.app.getName()}`", To: "label:`关于 ${F.app.getName()}`"},
		{From: `title:"About Codex"`, To: `title:"关于 Codex"`},
		{From: "detail:`Version ${F.app.getVersion()}", To: "detail:`版本 ${F.app.getVersion()}"},
		{From: `label:"Toggle Sidebar"`, To: `label:"切换侧边栏"`},
		{From: `label:"Toggle Terminal"`, To: `label:"切换终端"`},
		{From: `label:"Reload Window"`, To: `label:"重新加载窗口"`},
		{From: `label:"Toggle Diff Panel"`, To: `label:"切换差异面板"`},
		{From: `label:"Find"`, To: `label:"查找"`},
		{From: `label:"Previous Thread"`, To: `label:"上一对话"`},
		{From: `label:"Next Thread"`, To: `label:"下一对话"`},
		{From: `label:"Open Debug Window"`, To: `label:"打开调试窗口"`},
		{From: `label:"Toggle Query Devtools"`, To: `label:"切换查询开发者工具"`},
		{From: `label:"Back"`, To: `label:"后退"`},
		{From: `label:"Forward"`, To: `label:"前进"`},
		{From: `label:"Check for Updates…"`, To: `label:"检查更新…"`},
		{From: `title:"Updates Unavailable"`, To: `title:"更新不可用"`},
		{From: `message:"Automatic updates are unavailable right now."`, To: `message:"当前无法自动更新。"`},
		{From: "detail:`Sparkle initialization skipped: ${Fe}`", To: "detail:`已跳过 Sparkle 初始化：${Fe}`"},
		{From: `label:"View"`, To: `label:"视图"`},
		{From: `label:"Codex documentation"`, To: `label:"Codex 文档"`},
		{From: `label:"Troubleshooting"`, To: `label:"故障排除"`},
		{From: `label:"Keyboard shortcuts"`, To: `label:"键盘快捷键"`},
		{From: `label:"Local Environments"`, To: `label:"本地环境"`},
		{From: `label:"Worktrees"`, To: `label:"工作区"`},
		{From: `label:"Hosts"`, To: `label:"主机"`},
		{From: `label:"Skills"`, To: `label:"技能"`},
		{From: `label:"Automations"`, To: `label:"自动化"`},
		{From: `label:"Model Context Protocol"`, To: `label:"模型上下文协议"`},
		{From: `role:"fileMenu"`, To: `label:"文件",role:"fileMenu"`},
		{From: `{role:"editMenu"}`, To: `{label:"编辑",role:"editMenu"}`},
		{From: `{role:"windowMenu"}`, To: `{label:"窗口",role:"windowMenu"}`},
		{From: `{role:"help",submenu:[`, To: `{label:"帮助",role:"help",submenu:[`},
	}
}
