package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// task is one tool invocation from a task file.
type task struct {
	Name string `yaml:"name"`
	Call string `yaml:"call"`
}

// taskFile is the on-disk YAML shape:
//
//	tasks:
//	  - name: create standup note
//	    call: |
//	      <tool>
//	      <tool_name>create_note</tool_name>
//	      <arguments>
//	        <name>Standup</name>
//	        <body>agenda for tomorrow</body>
//	      </arguments>
//	      </tool>
type taskFile struct {
	Tasks []task `yaml:"tasks"`
}

// loadTasks assembles the task list from the -call flag and the -tasks file.
func loadTasks(config *Config) ([]task, error) {
	var taskList []task

	if config.Call != "" {
		taskList = append(taskList, task{Call: config.Call})
	}

	if config.TaskFile != "" {
		fileTasks, err := loadTaskFile(config.TaskFile)
		if err != nil {
			return nil, err
		}
		taskList = append(taskList, fileTasks...)
	}

	return taskList, nil
}

// loadTaskFile reads and validates a YAML task file.
func loadTaskFile(path string) ([]task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var file taskFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}

	if len(file.Tasks) == 0 {
		return nil, fmt.Errorf("task file %s contains no tasks", path)
	}

	for i, tk := range file.Tasks {
		if strings.TrimSpace(tk.Call) == "" {
			return nil, fmt.Errorf("task %d (%s) has an empty call", i+1, tk.Name)
		}
	}

	return file.Tasks, nil
}
