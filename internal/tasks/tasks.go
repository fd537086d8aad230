package tasks

import (
	"log"
	"time"

	"github.com/strecanska/tickerwatch/internal/models"
	"github.com/strecanska/tickerwatch/internal/services"
	"github.com/strecanska/tickerwatch/internal/websocket"
)

// Manager handles the execution of scheduled tasks
type Manager struct {
	stockData *services.StockDataService
	wsHub     *websocket.Hub
	interval  time.Duration
	tasks     []Task
}

// Task represents a scheduled task that needs to be executed
type Task interface {
	Start()
	Stop()
}

// NewManager creates a new task manager
func NewManager(stockData *services.StockDataService, wsHub *websocket.Hub, interval time.Duration) *Manager {
	return &Manager{
		stockData: stockData,
		wsHub:     wsHub,
		interval:  interval,
		tasks:     make([]Task, 0),
	}
}

// RegisterTask registers a task with the manager
func (m *Manager) RegisterTask(task Task) {
	m.tasks = append(m.tasks, task)
}

// StartScheduledTasks starts all registered tasks
func (m *Manager) StartScheduledTasks() {
	priceRefreshTask := NewPriceRefreshTask(m.stockData, m.wsHub, m.interval)
	m.RegisterTask(priceRefreshTask)

	for _, task := range m.tasks {
		go task.Start()
	}

	log.Println("Started all scheduled tasks")
}

// StopAllTasks stops all running tasks
func (m *Manager) StopAllTasks() {
	for _, task := range m.tasks {
		task.Stop()
	}
	log.Println("Stopped all scheduled tasks")
}

// PriceRefreshTask periodically records a fresh price observation for every
// favorite ticker
type PriceRefreshTask struct {
	stockData *services.StockDataService
	wsHub     *websocket.Hub
	interval  time.Duration
	stopChan  chan struct{}
	isRunning bool
}

// NewPriceRefreshTask creates a new price refresh task
func NewPriceRefreshTask(stockData *services.StockDataService, wsHub *websocket.Hub, interval time.Duration) *PriceRefreshTask {
	return &PriceRefreshTask{
		stockData: stockData,
		wsHub:     wsHub,
		interval:  interval,
		stopChan:  make(chan struct{}),
		isRunning: false,
	}
}

// Start begins the price refresh task
func (t *PriceRefreshTask) Start() {
	if t.isRunning {
		return
	}

	t.isRunning = true
	ticker := time.NewTicker(t.interval)

	go func() {
		for {
			select {
			case <-ticker.C:
				t.refreshPrices()
			case <-t.stopChan:
				ticker.Stop()
				t.isRunning = false
				return
			}
		}
	}()

	log.Println("Price refresh task started")
}

// Stop terminates the price refresh task
func (t *PriceRefreshTask) Stop() {
	if !t.isRunning {
		return
	}

	close(t.stopChan)
	log.Println("Price refresh task stopped")
}

// refreshPrices runs one bulk refresh and announces the result
func (t *PriceRefreshTask) refreshPrices() {
	log.Println("Running scheduled price refresh")

	count, err := t.stockData.RefreshCurrentPrices()
	if err != nil {
		log.Printf("Scheduled price refresh failed: %v", err)
		return
	}

	if t.wsHub != nil && count > 0 {
		t.wsHub.Broadcast(models.Message{
			Type:    "prices_updated",
			Content: map[string]int{"count": count},
		})
	}

	log.Printf("Price refresh completed, %d observations written", count)
}
