package ui

// Package ui contains the Fyne-based user interface for the application.
// It hosts the RangeSlider trim widget, wires it to the preview and export
// services, and renders export tasks, notifications, and settings. All UI
// strings are localized via Localization.
