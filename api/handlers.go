package api

import (
	"github.com/inkwell-app/backend/database"
)

type routeHandlers struct {
	healthHandler  healthHandler
	projectHandler projectHandler
	promptHandler  promptHandler
	settingHandler settingHandler
	itemHandler    itemHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		healthHandler:  newHealthHandler(),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		promptHandler:  newPromptHandler(database.PromptRepo()),
		settingHandler: newSettingHandler(database.SettingRepo()),
		itemHandler:    newItemHandler(database.ItemRepo()),
	}
}
