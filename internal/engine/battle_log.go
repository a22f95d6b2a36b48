package engine

import (
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/pkg/api"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AddLog appends a line to the battle's log history.
func (b *Battle) AddLog(text, logType string) {
	b.Logs = append(b.Logs, api.LogEntry{
		ID:    fmt.Sprintf("%s_%d", b.ID, b.logSeq),
		Round: b.Scheduler.Round(),
		Text:  text,
		Type:  logType,
	})
	b.logSeq++
	logger.Component("battle_log").WithFields(logrus.Fields{
		"battle":   b.ID,
		"log_type": logType,
	}).Info(text)
}
